package glbackend

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/glhelper/engine/gfx/shader"
)

// Triangle attribute names, in binding order.
const (
	AttribPosition = "aPos"
	AttribColor    = "aColor"
)

// Triangle is a colored triangle uploaded once and drawn with any program
// exposing AttribPosition and AttribColor.
type Triangle struct {
	vao uint32
	vbo uint32
}

// NewTriangle uploads the vertices and wires them to the attribute
// locations prog reports. prog must be linked.
func NewTriangle(prog *shader.Program) (*Triangle, error) {
	posLoc := prog.AttributeLocation(AttribPosition)
	colLoc := prog.AttributeLocation(AttribColor)
	if posLoc == shader.NotFound || colLoc == shader.NotFound {
		return nil, fmt.Errorf("triangle: program lacks %s/%s (got %d/%d)",
			AttribPosition, AttribColor, posLoc, colLoc)
	}

	verts := []float32{
		//  X,     Y,     R,   G,   B
		0.0, 0.6, 1.0, 0.2, 0.2,
		-0.6, -0.6, 0.2, 1.0, 0.2,
		0.6, -0.6, 0.2, 0.2, 1.0,
	}

	t := &Triangle{}
	gl.GenVertexArrays(1, &t.vao)
	gl.BindVertexArray(t.vao)

	gl.GenBuffers(1, &t.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, t.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	const stride = 5 * 4 // bytes
	gl.EnableVertexAttribArray(uint32(posLoc))
	gl.VertexAttribPointerWithOffset(uint32(posLoc), 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(uint32(colLoc))
	gl.VertexAttribPointerWithOffset(uint32(colLoc), 3, gl.FLOAT, false, stride, 2*4)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return t, nil
}

// Draw renders the triangle with prog.
func (t *Triangle) Draw(prog *shader.Program) {
	prog.Use()
	gl.BindVertexArray(t.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (t *Triangle) Delete() {
	if t.vbo != 0 {
		gl.DeleteBuffers(1, &t.vbo)
	}
	if t.vao != 0 {
		gl.DeleteVertexArrays(1, &t.vao)
	}
}
