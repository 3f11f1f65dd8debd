package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldEditing(t *testing.T) {
	f := &Field{Name: "zip", Max: 5}
	f.Paste("0213\n9xyz")
	assert.Equal(t, "02139", f.Value)
	f.Backspace()
	f.Insert('é')
	assert.Equal(t, "0213é", f.Value)
	f.Backspace()
	assert.Equal(t, "0213", f.Value)

	pw := &Field{Secret: true, Value: "abc"}
	assert.Equal(t, "•••", pw.Display())
	empty := &Field{}
	empty.Backspace()
	assert.Empty(t, empty.Value)
}

func TestFormFocus(t *testing.T) {
	form := NewForm(&Field{Name: "user"}, &Field{Name: "pass", Secret: true})
	assert.Equal(t, "user", form.Focused().Name)
	form.Next()
	assert.Equal(t, "pass", form.Focused().Name)
	form.Next()
	assert.Equal(t, 0, form.FocusIndex())
	form.Prev()
	assert.Equal(t, 1, form.FocusIndex())
	form.Focus(7)
	assert.Equal(t, 1, form.FocusIndex())

	form.Set("user", "ada")
	assert.Equal(t, "ada", form.Get("user"))
	assert.Empty(t, form.Get("nope"))
	form.Reset()
	assert.Empty(t, form.Get("user"))
	assert.Equal(t, 0, form.FocusIndex())
	assert.Nil(t, NewForm().Focused())
}

func TestGrid(t *testing.T) {
	cells := Grid(Rect{X: 10, Y: 20, Width: 500, Height: 1000}, 200, 300, 20, 5)
	assert.Len(t, cells, 5)
	assert.Equal(t, Rect{X: 10, Y: 20, Width: 200, Height: 300}, cells[0])
	assert.Equal(t, Rect{X: 230, Y: 20, Width: 200, Height: 300}, cells[1])
	assert.Equal(t, Rect{X: 10, Y: 340, Width: 200, Height: 300}, cells[2])

	narrow := Grid(Rect{Width: 50}, 200, 300, 20, 2)
	assert.Equal(t, float32(320), narrow[1].Y)

	row := Row(0, 5, 30, 10, 50, 70)
	assert.Equal(t, Rect{X: 60, Y: 5, Width: 70, Height: 30}, row[1])
}
