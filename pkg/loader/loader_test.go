package loader

import (
	"errors"
	"strings"
	"testing"
)

func TestParseScene_MinimalSphere(t *testing.T) {
	src := `
# a single red sphere lit from the front
camera 0 0 5  0 0 0  0 1 0  60 1
light directional 0 0 -1  1 1 1
material red  0.1 0 0  0.8 0 0  0 0 0  0  0 0 0  0 0 0  1
sphere 0 0 0 1 red
`
	s, err := ParseScene("mem", strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Shapes) != 1 {
		t.Fatalf("expected 1 shape, got %d", len(s.Shapes))
	}
	if len(s.LightList) != 1 {
		t.Fatalf("expected 1 light, got %d", len(s.LightList))
	}
}

func TestParseScene_PlaneAndTriangleAndChecker(t *testing.T) {
	src := `
camera 0 2 5  0 0 0  0 1 0  60 1
light point 0 5 0  1 1 1  1 0 0.01
material white 1 1 1  1 1 1  0 0 0  0  0 0 0  0 0 0  1
material black 0 0 0  0 0 0  0 0 0  0  0 0 0  0 0 0  1
checker floor white black 2
plane 0 0 0  0 1 0  floor
triangle 0 0 0  1 0 0  0 1 0  white
`
	s, err := ParseScene("mem", strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(s.Shapes))
	}
}

func TestParseScene_UnrecognizedDirectiveIsSyntaxError(t *testing.T) {
	_, err := ParseScene("bad.scene", strings.NewReader("frobnicate 1 2 3\n"))
	if err == nil {
		t.Fatal("expected an error")
	}
	var synErr *SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
	}
	if !strings.Contains(synErr.Error(), "bad.scene: 1") {
		t.Errorf("expected file/line in message, got %q", synErr.Error())
	}
}

func TestParseScene_MalformedNumberIsSyntaxError(t *testing.T) {
	src := "sphere 0 0 0 notanumber red\n"
	_, err := ParseScene("bad.scene", strings.NewReader(src))
	var synErr *SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("expected *SyntaxError, got %T: %v", err, err)
	}
}

func TestParseScene_UndeclaredMaterialIsTextureMappingError(t *testing.T) {
	src := `
camera 0 0 5  0 0 0  0 1 0  60 1
sphere 0 0 0 1 ghost
`
	_, err := ParseScene("bad.scene", strings.NewReader(src))
	var texErr *TextureMappingError
	if !errors.As(err, &texErr) {
		t.Fatalf("expected *TextureMappingError, got %T: %v", err, err)
	}
	if texErr.Name != "ghost" {
		t.Errorf("expected missing material name %q, got %q", "ghost", texErr.Name)
	}
}

func TestParseScene_EmptySceneIsParserFatal(t *testing.T) {
	_, err := ParseScene("empty.scene", strings.NewReader("# nothing but comments\n"))
	var fatalErr *ParserFatal
	if !errors.As(err, &fatalErr) {
		t.Fatalf("expected *ParserFatal, got %T: %v", err, err)
	}
}

func TestParseScene_UnopenableFileIsSceneFileUnreadable(t *testing.T) {
	_, err := LoadScene("/nonexistent/path/does-not-exist.scene")
	var ioErr *SceneFileUnreadable
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *SceneFileUnreadable, got %T: %v", err, err)
	}
}
