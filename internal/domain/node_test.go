package domain

import (
	"testing"
)

func TestNewNode(t *testing.T) {
	t.Run("creates node with id and title", func(t *testing.T) {
		node := NewNode("go", "Go notes")

		if node.ID != "go" {
			t.Errorf("expected ID 'go', got %s", node.ID)
		}
		if node.Title != "Go notes" {
			t.Errorf("expected Title 'Go notes', got %s", node.Title)
		}
		if node.Pin.Held() {
			t.Error("expected new node to be unpinned")
		}
	})
}

func TestNodeDisplayName(t *testing.T) {
	t.Run("uses title when present", func(t *testing.T) {
		node := NewNode("id", "Title")
		if got := node.DisplayName(); got != "Title" {
			t.Errorf("expected 'Title', got %s", got)
		}
	})

	t.Run("falls back to id", func(t *testing.T) {
		node := NewNode("id", "")
		if got := node.DisplayName(); got != "id" {
			t.Errorf("expected 'id', got %s", got)
		}
	})
}

func TestNodeHasTag(t *testing.T) {
	node := &Node{ID: "a", Tags: []string{"go", "graphs"}}

	if !node.HasTag("go") {
		t.Error("expected tag 'go' to be found")
	}
	if node.HasTag("rust") {
		t.Error("expected tag 'rust' not to be found")
	}
}

func TestNodePosition(t *testing.T) {
	t.Run("free node reports simulated position", func(t *testing.T) {
		node := &Node{ID: "a", X: 10, Y: 20}
		x, y := node.Position()
		if x != 10 || y != 20 {
			t.Errorf("expected (10,20), got (%f,%f)", x, y)
		}
	})

	t.Run("held node reports pin position", func(t *testing.T) {
		node := &Node{ID: "a", X: 10, Y: 20}
		node.Pin.Hold(50, 60)
		x, y := node.Position()
		if x != 50 || y != 60 {
			t.Errorf("expected (50,60), got (%f,%f)", x, y)
		}
	})
}

func TestNodeResetSimulation(t *testing.T) {
	node := &Node{ID: "a", X: 1, Y: 2, VX: 3, VY: 4}
	node.Pin.Hold(5, 6)

	node.ResetSimulation()

	if node.X != 0 || node.Y != 0 || node.VX != 0 || node.VY != 0 {
		t.Error("expected simulation state to be zeroed")
	}
	if node.Pin.Held() {
		t.Error("expected pin to be released")
	}
}
