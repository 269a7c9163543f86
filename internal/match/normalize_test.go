package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_Basics(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Olive Oil", "olive oil"},
		{"  flour  ", "flour"},
		{"the red onion", "red onion"},
		{"a lemon", "lemon"},
		{"an apple", "apple"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Key(tt.name), "input %q", tt.name)
	}
}

func TestKey_Modifiers(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"fresh basil", "basil"},
		{"dried oregano", "oregano"},
		{"frozen peas", "pea"},
		{"organic whole milk", "milk"},
		{"large eggs", "egg"},
		{"2 medium carrots", "2 carrot"},
		{"small red potatoes", "red potato"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Key(tt.name), "input %q", tt.name)
	}
}

func TestKey_Singularization(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"berries", "berry"},
		{"cherries", "cherry"},
		{"tomatoes", "tomato"},
		{"potatoes", "potato"},
		{"boxes", "box"},
		{"peaches", "peach"},
		{"radishes", "radish"},
		{"grapes", "grape"},
		{"carrots", "carrot"},
		{"eggs", "egg"},
		{"hummus", "hummus"},
		{"couscous", "couscous"},
		{"molasses", "molasses"},
		{"asparagus", "asparagus"},
		{"swiss cheese", "swiss cheese"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Key(tt.name), "input %q", tt.name)
	}
}

func TestKey_MergeCandidates(t *testing.T) {
	// Variants that should land on the same key.
	assert.Equal(t, Key("Fresh Tomatoes"), Key("tomato"))
	assert.Equal(t, Key("large egg"), Key("eggs"))
	assert.Equal(t, Key("olive oil"), Key("Olive Oil"))

	// Accepted limitation: different vocabulary stays separate.
	assert.NotEqual(t, Key("scallion"), Key("green onion"))
}

func TestKey_Deterministic(t *testing.T) {
	for range 3 {
		assert.Equal(t, "basil", Key("fresh basil"))
	}
}

func TestKey_AllModifierWords(t *testing.T) {
	// A name of nothing but modifiers keeps its words instead of
	// collapsing to the empty key.
	assert.NotEmpty(t, Key("fresh whole"))
	assert.Empty(t, Key(""))
	assert.Empty(t, Key("   "))
}
