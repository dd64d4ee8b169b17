package scenes

import (
	"errors"
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScene struct {
	name     string
	updates  int
	resumes  int
	viewport image.Rectangle
	err      error
	onUpdate func()
}

func (f *fakeScene) Update() error {
	f.updates++
	if f.onUpdate != nil {
		f.onUpdate()
	}
	return f.err
}

func (f *fakeScene) Draw(*ebiten.Image) {}
func (f *fakeScene) Resize(viewport image.Rectangle) { f.viewport = viewport }
func (f *fakeScene) Resume() { f.resumes++ }

func TestEmptyStack(t *testing.T) {
	s := NewStack()
	assert.Nil(t, s.Top())
	assert.NoError(t, s.Update())
	s.Pop()
	assert.Zero(t, s.Len())
}

func TestStackPopKeepsRoot(t *testing.T) {
	root := &fakeScene{name: "root"}
	s := NewStack()
	s.Push(root)

	s.Pop()
	assert.Equal(t, 1, s.Len())
	assert.Same(t, root, s.Top())
	assert.Zero(t, root.resumes)
}

func TestStackPushPop(t *testing.T) {
	root := &fakeScene{name: "root"}
	modal := &fakeScene{name: "modal"}
	s := NewStack()
	s.Push(root)

	s.Push(modal)
	assert.Same(t, modal, s.Top())
	assert.True(t, modal.viewport.Empty(), "no viewport known yet")

	s.Pop()
	assert.Same(t, root, s.Top())
	assert.Equal(t, 1, root.resumes)
}

func TestStackResizeReachesEveryScene(t *testing.T) {
	root := &fakeScene{}
	modal := &fakeScene{}
	s := NewStack()
	s.Push(root)
	s.Push(modal)

	vp := image.Rect(0, 0, 1280, 720)
	s.Resize(vp)
	assert.Equal(t, vp, root.viewport)
	assert.Equal(t, vp, modal.viewport)

	late := &fakeScene{}
	s.Push(late)
	assert.Equal(t, vp, late.viewport, "pushed scenes get the current viewport")
}

func TestStackUpdatesOnlyTop(t *testing.T) {
	root := &fakeScene{}
	modal := &fakeScene{}
	s := NewStack()
	s.Push(root)
	s.Push(modal)

	require.NoError(t, s.Update())
	assert.Zero(t, root.updates)
	assert.Equal(t, 1, modal.updates)
}

func TestStackQuit(t *testing.T) {
	root := &fakeScene{}
	s := NewStack()
	s.Push(root)
	root.onUpdate = s.Quit

	assert.ErrorIs(t, s.Update(), ebiten.Termination)
	assert.ErrorIs(t, s.Update(), ebiten.Termination)
	assert.Equal(t, 1, root.updates)
}

func TestStackReturnsSceneError(t *testing.T) {
	boom := errors.New("boom")
	s := NewStack()
	s.Push(&fakeScene{err: boom})
	assert.ErrorIs(t, s.Update(), boom)
}
