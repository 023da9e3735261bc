package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"valid", 800, 600, false},
		{"single cell", 1, 1, false},
		{"max", MaxDimension, MaxDimension, false},

		{"zero width", 0, 10, true},
		{"negative height", 10, -1, true},
		{"too wide", MaxDimension + 1, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%d, %d) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidDimensions) {
				t.Errorf("code = %v, want %v", CodeOf(err), ErrCodeInvalidDimensions)
			}
		})
	}
}

func TestValidateResizeStep(t *testing.T) {
	tests := []struct {
		name    string
		step    float64
		wantErr bool
	}{
		{"one percent", 0.01, false},
		{"whole", 1, false},

		{"zero", 0, true},
		{"negative", -0.1, true},
		{"above one", 1.5, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResizeStep(tt.step)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateResizeStep(%v) error = %v, wantErr %v", tt.step, err, tt.wantErr)
			}
		})
	}
}

func TestValidateIgnorePattern(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"literal", ".git", false},
		{"star", "*.tmp", false},
		{"class", "[a-c]*", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"unterminated class", "[abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIgnorePattern(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIgnorePattern(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "src/pkg", false},
		{"absolute", "/home/user/projects", false},
		{"dot", ".", false},

		{"empty", "", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"too long", strings.Repeat("a", 5000), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	supported := []string{"svg", "json", "png"}
	if err := ValidateFormat("SVG", supported); err != nil {
		t.Errorf("ValidateFormat(SVG) error = %v", err)
	}
	err := ValidateFormat("gif", supported)
	if !Is(err, ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormat(gif) error = %v, want INVALID_FORMAT", err)
	}
}
