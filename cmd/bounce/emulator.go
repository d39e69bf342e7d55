package main

import (
	"fmt"
	"strings"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.2/glfw"
	"github.com/p47t/bounce"
	"github.com/retroenv/retrogolib/log"
)

const (
	ScreenWidth  = bounce.ViewWidth
	ScreenHeight = bounce.ViewHeight
)

type Emulator struct {
	sys *bounce.System

	screenData            []byte
	window                *glfw.Window
	fullScreenTriangleVAO uint32
	bufferTexture         uint32
	shaderProgram         uint32
}

const vertexShader = `
#version 330

noperspective out vec2 TexCoord;

void main(void) {
    TexCoord.x = (gl_VertexID == 2)? 2.0: 0.0;
    TexCoord.y = (gl_VertexID == 1)? 2.0: 0.0;

	gl_Position = vec4(2.0 * TexCoord - 1.0, 0.0, 1.0);
}
`

const fragmentShader = `
#version 330

uniform sampler2D buffer;
noperspective in vec2 TexCoord;

out vec3 outColor;

void main(void) {
	outColor = texture(buffer, TexCoord).rgb;
}
`

func (emu *Emulator) Initialize(scale int) error {
	var err error
	if err = glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}

	// Create window
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	emu.window, err = glfw.CreateWindow(ScreenWidth*scale, ScreenHeight*scale, "Bounce", nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	emu.window.MakeContextCurrent()

	emu.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Press && key == glfw.KeyEscape {
			w.SetShouldClose(true)
		}
	})

	// Initialize Glow
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize gl: %w", err)
	}
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)

	gl.GenVertexArrays(1, &emu.fullScreenTriangleVAO)
	gl.BindVertexArray(emu.fullScreenTriangleVAO)

	var status int32

	emu.shaderProgram = gl.CreateProgram()

	vs, err := compileShader(vertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(vs)
	gl.AttachShader(emu.shaderProgram, vs)
	defer gl.DetachShader(emu.shaderProgram, vs)

	fs, err := compileShader(fragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(fs)
	gl.AttachShader(emu.shaderProgram, fs)
	defer gl.DetachShader(emu.shaderProgram, fs)

	gl.LinkProgram(emu.shaderProgram)
	gl.GetProgramiv(emu.shaderProgram, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return fmt.Errorf("failed to link shaderProgram")
	}

	emu.screenData = make([]byte, ScreenWidth*ScreenHeight*3)

	gl.GenTextures(1, &emu.bufferTexture)
	gl.BindTexture(gl.TEXTURE_2D, emu.bufferTexture)

	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGB,
		ScreenWidth, ScreenHeight, 0,
		gl.RGB, gl.UNSIGNED_BYTE, unsafe.Pointer(&emu.screenData[0]))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	bufferLoc := gl.GetUniformLocation(emu.shaderProgram, gl.Str("buffer"+"\x00"))
	gl.Uniform1i(bufferLoc, 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.UseProgram(emu.shaderProgram)

	// Initialize system
	emu.sys = bounce.NewSystem()
	emu.sys.Initialize()
	return nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))

		return 0, fmt.Errorf("failed to compile %v: %v", source, infoLog)
	}

	return shader, nil
}

// rgb332 expands the display's one-byte color into 8-bit channels.
func rgb332(c uint8) (r, g, b byte) {
	r = ((c >> 5) & 0x7) * 36
	g = ((c >> 2) & 0x7) * 36
	b = (c & 0x3) * 85
	return r, g, b
}

func (emu *Emulator) UpdateTexture() {
	screen := emu.sys.Screen()
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			offset := ((ScreenHeight-y-1)*ScreenWidth + x) * 3
			r, g, b := rgb332(screen.GetPixel(uint8(x), uint8(y)))
			emu.screenData[offset], emu.screenData[offset+1], emu.screenData[offset+2] = r, g, b
		}
	}

	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0, 0, 0,
		ScreenWidth, ScreenHeight, gl.RGB, gl.UNSIGNED_BYTE,
		unsafe.Pointer(&emu.screenData[0]))

	gl.BindVertexArray(emu.fullScreenTriangleVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
}

func (emu *Emulator) Loop(frameTime time.Duration, showFPS bool, logger *log.Logger) {
	frames := 0
	lastReport := time.Now()

	for !emu.window.ShouldClose() {
		start := time.Now()

		glfw.PollEvents()

		emu.sys.Frame()

		if emu.sys.Screen().Dirty() {
			gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
			emu.UpdateTexture()
			emu.window.SwapBuffers()

			emu.sys.Screen().SetDirty(false)
		}

		frames++
		if showFPS && time.Since(lastReport) >= time.Second {
			logger.Info("Frame rate", log.Int("fps", frames))
			frames = 0
			lastReport = time.Now()
		}

		if elapsed := time.Since(start); elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}
}

func (emu *Emulator) Terminate() {
	gl.DeleteVertexArrays(1, &emu.fullScreenTriangleVAO)
	gl.DeleteTextures(1, &emu.bufferTexture)
	gl.DeleteProgram(emu.shaderProgram)
	glfw.Terminate()
}
