package scenes

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen on the navigation stack.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	Resize(viewport image.Rectangle)
}

// resumer is implemented by scenes that need to know when they are
// uncovered again after the scene above them was popped.
type resumer interface {
	Resume()
}

// Stack is the navigation stack. Only the top scene is updated; every
// scene is drawn from bottom to top so modal screens overlay the one
// beneath them.
type Stack struct {
	scenes   []Scene
	viewport image.Rectangle
	quit     bool
}

// NewStack returns an empty stack. The first pushed scene is the root.
func NewStack() *Stack {
	return &Stack{}
}

// Push puts a scene on top and sizes it to the last known viewport.
func (s *Stack) Push(scene Scene) {
	s.scenes = append(s.scenes, scene)
	if !s.viewport.Empty() {
		scene.Resize(s.viewport)
	}
}

// Pop removes the top scene. The root scene is never popped.
func (s *Stack) Pop() {
	n := len(s.scenes)
	if n <= 1 {
		return
	}
	s.scenes[n-1] = nil
	s.scenes = s.scenes[:n-1]

	if r, ok := s.Top().(resumer); ok {
		r.Resume()
	}
}

// Top returns the scene currently receiving input, nil when empty.
func (s *Stack) Top() Scene {
	if len(s.scenes) == 0 {
		return nil
	}
	return s.scenes[len(s.scenes)-1]
}

func (s *Stack) Len() int {
	return len(s.scenes)
}

// Quit makes the next Update end the game.
func (s *Stack) Quit() {
	s.quit = true
}

// Resize forwards a viewport change to every scene.
func (s *Stack) Resize(viewport image.Rectangle) {
	s.viewport = viewport
	for _, scene := range s.scenes {
		scene.Resize(viewport)
	}
}

func (s *Stack) Update() error {
	if s.quit {
		return ebiten.Termination
	}
	top := s.Top()
	if top == nil {
		return nil
	}
	if err := top.Update(); err != nil {
		return err
	}
	if s.quit {
		return ebiten.Termination
	}
	return nil
}

func (s *Stack) Draw(screen *ebiten.Image) {
	for _, scene := range s.scenes {
		scene.Draw(screen)
	}
}
