package domain

import (
	"testing"
)

func TestNewLink(t *testing.T) {
	t.Run("creates unweighted link", func(t *testing.T) {
		link := NewLink("a", "b")

		if link.Source != "a" {
			t.Errorf("expected Source 'a', got %s", link.Source)
		}
		if link.Target != "b" {
			t.Errorf("expected Target 'b', got %s", link.Target)
		}
		if link.Weight != nil {
			t.Error("expected Weight to be nil")
		}
	})

	t.Run("creates weighted link", func(t *testing.T) {
		link := NewWeightedLink("a", "b", 3)
		if link.Weight == nil || *link.Weight != 3 {
			t.Errorf("expected Weight 3, got %v", link.Weight)
		}
	})
}

func TestLinkEffectiveWeight(t *testing.T) {
	t.Run("defaults to 1", func(t *testing.T) {
		if w := NewLink("a", "b").EffectiveWeight(); w != 1 {
			t.Errorf("expected 1, got %f", w)
		}
	})

	t.Run("uses explicit weight", func(t *testing.T) {
		if w := NewWeightedLink("a", "b", 2.5).EffectiveWeight(); w != 2.5 {
			t.Errorf("expected 2.5, got %f", w)
		}
	})

	t.Run("explicit zero is kept", func(t *testing.T) {
		if w := NewWeightedLink("a", "b", 0).EffectiveWeight(); w != 0 {
			t.Errorf("expected 0, got %f", w)
		}
	})
}

func TestLinkTouches(t *testing.T) {
	link := NewLink("a", "b")

	if !link.Touches("a") || !link.Touches("b") {
		t.Error("expected link to touch both endpoints")
	}
	if link.Touches("c") {
		t.Error("expected link not to touch 'c'")
	}
}

func TestLinkKey(t *testing.T) {
	first := NewLink("a", "b").Key(0)
	second := NewLink("a", "b").Key(1)

	if first == second {
		t.Error("expected parallel links to get distinct keys")
	}
}
