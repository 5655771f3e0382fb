//go:build js && wasm

package webgl

import (
	"syscall/js"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maspe36/webgl-cube-demo/gles"
)

func TestObjects(t *testing.T) {
	o := newObjects()
	assert.Zero(t, o.put(js.Null()))
	assert.Zero(t, o.put(js.Undefined()))

	v := js.Global().Get("Object").New()
	h := o.put(v)
	require.NotZero(t, h)
	assert.True(t, o.get(h).Equal(v))
	assert.True(t, o.get(0).IsNull())
	assert.True(t, o.get(h+1).IsNull())

	o.drop(h)
	assert.True(t, o.get(h).IsNull())
	assert.NotEqual(t, h, o.put(js.Global().Get("Object").New()))
}

func TestParamInt(t *testing.T) {
	assert.Equal(t, gles.TRUE, paramInt(js.ValueOf(true)))
	assert.Equal(t, gles.FALSE, paramInt(js.ValueOf(false)))
	assert.Equal(t, 35713, paramInt(js.ValueOf(35713)))
	assert.Equal(t, 0, paramInt(js.Null()))
	assert.Equal(t, 0, paramInt(js.ValueOf("1")))
}

// fakeGL is a JavaScript object standing in for a WebGLRenderingContext.
type fakeGL struct {
	obj   js.Value
	mvp   js.Value
	funcs []js.Func

	loc    js.Value
	values int
}

func newFakeGL(t *testing.T) *fakeGL {
	f := &fakeGL{
		obj: js.Global().Get("Object").New(),
		mvp: js.Global().Get("Object").New(),
	}
	f.method("createProgram", func(args []js.Value) any {
		return js.Global().Get("Object").New()
	})
	f.method("getUniformLocation", func(args []js.Value) any {
		if args[1].String() == "mvp" {
			return f.mvp
		}
		return js.Null()
	})
	f.method("uniformMatrix4fv", func(args []js.Value) any {
		f.loc = args[0]
		f.values = args[2].Length()
		return nil
	})
	t.Cleanup(func() {
		for _, fn := range f.funcs {
			fn.Release()
		}
	})
	return f
}

func (f *fakeGL) method(name string, fn func(args []js.Value) any) {
	jf := js.FuncOf(func(this js.Value, args []js.Value) any { return fn(args) })
	f.funcs = append(f.funcs, jf)
	f.obj.Set(name, jf)
}

func TestUniformMatrix4fv(t *testing.T) {
	f := newFakeGL(t)
	c := NewContext(f.obj)
	p := c.CreateProgram()
	require.True(t, p.IsValid())

	assert.False(t, c.GetUniformLocation(p, "missing").IsValid())
	u := c.GetUniformLocation(p, "mvp")
	require.True(t, u.IsValid())

	c.UniformMatrix4fv(u, make([]float32, 16))
	assert.True(t, f.loc.Equal(f.mvp))
	assert.Equal(t, 16, f.values)

	c.UniformMatrix4fv(gles.Uniform{Value: -1}, make([]float32, 16))
	assert.True(t, f.loc.IsNull())
}
