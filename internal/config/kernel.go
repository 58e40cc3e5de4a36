package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// maxKernelSide is the largest width or height that renders at a reasonable cost.
const maxKernelSide = 16

// BlurKernel is one convolution pass: a Width x Height matrix stored row-major.
type BlurKernel struct {
	Width        int
	Height       int
	Coefficients []float64
}

// HasNegative reports whether any coefficient is negative. Such kernels are
// unreliable under the xrender backend.
func (k BlurKernel) HasNegative() bool {
	for _, c := range k.Coefficients {
		if c < 0 {
			return true
		}
	}
	return false
}

// Oversized reports whether the kernel is likely to be slow to render.
func (k BlurKernel) Oversized() bool {
	return k.Width > maxKernelSide || k.Height > maxKernelSide
}

// DefaultBlurKernel returns the single-pass 3x3 box kernel.
func DefaultBlurKernel() BlurKernel {
	coefficients := make([]float64, 9)
	for i := range coefficients {
		coefficients[i] = 1
	}
	return BlurKernel{Width: 3, Height: 3, Coefficients: coefficients}
}

var kernelPresets = map[string]string{
	"3x3box":      boxKernelSpec(3),
	"5x5box":      boxKernelSpec(5),
	"7x7box":      boxKernelSpec(7),
	"3x3gaussian": "3,3,0.243117,0.493069,0.243117,0.493069,0.493069,0.243117,0.493069,0.243117",
	"5x5gaussian": "5,5,0.003493,0.029143,0.059106,0.029143,0.003493,0.029143,0.243117,0.493069,0.243117,0.029143,0.059106,0.493069,0.493069,0.059106,0.029143,0.243117,0.493069,0.243117,0.029143,0.003493,0.029143,0.059106,0.029143,0.003493",
}

func boxKernelSpec(side int) string {
	return strconv.Itoa(side) + "," + strconv.Itoa(side) + strings.Repeat(",1", side*side-1)
}

var errTooManyKernels = errors.New("too many blur kernels")

// ParseBlurKernels parses a ';'-separated list of kernels. Each kernel is a
// preset name or "W,H,c1,c2,..." listing every coefficient except the centre,
// which is fixed at 1. W and H must be positive and odd.
func ParseBlurKernels(raw string) ([]BlurKernel, error) {
	segments := strings.Split(raw, ";")
	kernels := make([]BlurKernel, 0, len(segments))
	for i, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			if i == len(segments)-1 && i > 0 {
				break
			}
			return nil, fmt.Errorf("blur kernel %d: empty specification", i+1)
		}
		if len(kernels) == MaxBlurPasses {
			return nil, fmt.Errorf("%w: at most %d passes", errTooManyKernels, MaxBlurPasses)
		}
		if preset, ok := kernelPresets[segment]; ok {
			segment = preset
		}
		kernel, err := parseBlurKernel(segment)
		if err != nil {
			return nil, fmt.Errorf("blur kernel %d: %w", i+1, err)
		}
		kernels = append(kernels, kernel)
	}
	return kernels, nil
}

func parseBlurKernel(spec string) (BlurKernel, error) {
	fields := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) < 2 {
		return BlurKernel{}, errors.New("missing width/height")
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return BlurKernel{}, fmt.Errorf("invalid width %q", fields[0])
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return BlurKernel{}, fmt.Errorf("invalid height %q", fields[1])
	}
	if width <= 0 || height <= 0 {
		return BlurKernel{}, errors.New("width and height must be positive")
	}
	if width%2 == 0 || height%2 == 0 {
		return BlurKernel{}, errors.New("width and height must be odd")
	}

	values := fields[2:]
	want := width*height - 1
	if len(values) < want {
		return BlurKernel{}, fmt.Errorf("expected %d coefficients, got %d", want, len(values))
	}
	if len(values) > want {
		return BlurKernel{}, fmt.Errorf("trailing characters after %d coefficients", want)
	}

	center := height/2*width + width/2
	coefficients := make([]float64, width*height)
	next := 0
	for i := range coefficients {
		if i == center {
			coefficients[i] = 1
			continue
		}
		c, err := strconv.ParseFloat(values[next], 64)
		if err != nil {
			return BlurKernel{}, fmt.Errorf("invalid coefficient %q", values[next])
		}
		coefficients[i] = c
		next++
	}
	return BlurKernel{Width: width, Height: height, Coefficients: coefficients}, nil
}
