package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTML(t *testing.T) {
	btn := N("buy", "button").Class("button").Text("Buy <now>")
	btn.OnClick = func() {}
	in := N("email", "input").Prop("value", `a"b`).Prop("placeholder", "Email")
	in.OnInput = func(string) {}
	off := N("off", "button").Text("Off")
	off.SetDisabled(true)

	root := N("root", "div").Class("card").Child(
		N("img", "img").Prop("src", "/x.svg"),
		btn,
		in,
		off,
	)

	expected := `<div id="root" class="card">` +
		`<img id="img" src="/x.svg">` +
		`<button id="buy" type="submit" name="click" value="buy" class="button">Buy &lt;now&gt;</button>` +
		`<input id="email" type="text" name="input.email" value="a&#34;b" placeholder="Email">` +
		`<button id="off" type="button" disabled>Off</button>` +
		`</div>`

	assert.Equal(t, expected, HTML(root))
}

func TestHTML_Nil(t *testing.T) {
	assert.Equal(t, "", HTML(nil))
}
