package triangle

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return fmt.Sprintf("ShaderStage(%d)", int(s))
}

type ShaderSource struct {
	Path  string
	Stage ShaderStage
	Text  string
}

// CString returns the source NUL-terminated, as the GL binding expects.
func (s ShaderSource) CString() string {
	return s.Text + "\x00"
}

// LoadShaderSource reads at most limit bytes of shader source from path.
// A file longer than limit is rejected rather than truncated.
func LoadShaderSource(path string, stage ShaderStage, limit int) (ShaderSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return ShaderSource{}, &ShaderFileError{Path: path, Kind: ShaderMissing, Err: err}
	}
	defer f.Close()

	// One extra byte tells "exactly fits" apart from "too long".
	data, err := io.ReadAll(io.LimitReader(f, int64(limit)+1))
	if err != nil {
		return ShaderSource{}, &ShaderFileError{Path: path, Kind: ShaderMissing, Err: err}
	}
	if len(data) > limit {
		return ShaderSource{}, &ShaderFileError{Path: path, Kind: ShaderTooLarge, Limit: limit}
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return ShaderSource{}, &ShaderFileError{Path: path, Kind: ShaderMalformed, Limit: limit}
	}
	return ShaderSource{Path: path, Stage: stage, Text: string(data)}, nil
}

// LoadShaders reads the vertex and fragment sources of a variant, vertex first.
func LoadShaders(v Variant) (vs, fs ShaderSource, err error) {
	vs, err = LoadShaderSource(v.VertexShader, VertexStage, v.MaxShaderBytes)
	if err != nil {
		return ShaderSource{}, ShaderSource{}, err
	}
	fs, err = LoadShaderSource(v.FragmentShader, FragmentStage, v.MaxShaderBytes)
	if err != nil {
		return ShaderSource{}, ShaderSource{}, err
	}
	return vs, fs, nil
}
