package core_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/notepad/pkg/core"
)

func TestColor_Names(t *testing.T) {
	tests := []struct {
		input string
		want  core.Color
	}{
		{"Red", core.Red},
		{"green", core.Green},
		{" BLUE ", core.Blue},
		{"Yellow", core.Yellow},
		{"orange", core.Orange},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := core.ParseColor(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := core.ParseColor("Purple")
	assert.ErrorIs(t, err, core.ErrInvalidColor)
}

func TestNote_JSONShape(t *testing.T) {
	n := core.Note{ID: "abc", Title: "T", Content: "C", Color: core.Green}

	data, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"abc","title":"T","content":"C","color":"Green"}`, string(data))
}

func TestNote_RejectsUnknownColor(t *testing.T) {
	var n core.Note
	err := json.Unmarshal([]byte(`{"id":"a","title":"","content":"","color":"green"}`), &n)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid note color")

	_, err = json.Marshal(core.Note{Color: core.Color(42)})
	assert.Error(t, err)
}

func TestNote_RequiresEveryField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
	}{
		{"Empty Object", `{}`, `"id"`},
		{"Missing Title", `{"id":"a","content":"","color":"Red"}`, `"title"`},
		{"Missing Content", `{"id":"a","title":"","color":"Red"}`, `"content"`},
		{"Missing Color", `{"id":"a","title":"","content":""}`, `"color"`},
		{"Null Color", `{"id":"a","title":"t","content":"c","color":null}`, `"color"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := core.Note{ID: "untouched"}
			err := json.Unmarshal([]byte(tt.input), &n)
			require.ErrorIs(t, err, core.ErrMissingField)
			assert.Contains(t, err.Error(), tt.field)
			assert.Equal(t, core.Note{ID: "untouched"}, n)
		})
	}

	var n core.Note
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","title":"","content":"","color":"Orange"}`), &n))
	assert.Equal(t, core.Note{ID: "a", Color: core.Orange}, n)
}

func TestNotes_CloneIsIndependent(t *testing.T) {
	orig := core.Notes{"a": {ID: "a", Title: "A"}}
	clone := orig.Clone()
	clone["b"] = core.Note{ID: "b"}
	n := clone["a"]
	n.Title = "changed"
	clone["a"] = n

	assert.Len(t, orig, 1)
	assert.Equal(t, "A", orig["a"].Title)
}
