// Package loader implements the external scene-file collaborator the
// core tracer never sees directly: a minimal line-oriented reader that
// turns a text description of lights, geometry, materials, and a camera
// into a *scene.Scene, using the error kinds from spec.md §7 to let
// callers distinguish I/O failure, syntax rejection, post-parse semantic
// failure, and texture resolution failure.
//
// Grammar, one directive per line, whitespace-separated fields, blank
// lines and lines starting with # ignored:
//
//	camera    ex ey ez lx ly lz ux uy uz vfov aspect
//	background r g b
//	material   name ar ag ab dr dg db sr sg sb shininess kr kg kb kt_r kt_g kt_b index
//	checker    name oddMaterial evenMaterial cellSize
//	light      directional dx dy dz r g b
//	light      point px py pz r g b kc kl kq
//	sphere     cx cy cz radius material
//	plane      px py pz nx ny nz material
//	triangle   x0 y0 z0 x1 y1 z1 x2 y2 z2 material
//
// material and checker lines must precede any shape or light that
// references their name.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jpeterson-dev/wray/pkg/core"
	"github.com/jpeterson-dev/wray/pkg/geometry"
	"github.com/jpeterson-dev/wray/pkg/lights"
	"github.com/jpeterson-dev/wray/pkg/material"
	"github.com/jpeterson-dev/wray/pkg/scene"
)

// document holds one parse pass's state: the file's display name (used
// in error messages, empty for in-memory readers), the accumulated
// error-stack context, and the materials declared so far.
type document struct {
	file      string
	errStack  []string
	materials map[string]core.Material
	scene     *scene.Scene
}

// LoadScene opens path and parses it into a *scene.Scene. I/O failures
// surface as *SceneFileUnreadable; parse failures as *SyntaxError,
// *ParserFatal, or *TextureMappingError.
func LoadScene(path string) (*scene.Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SceneFileUnreadable{Path: path, Err: err}
	}
	defer f.Close()
	return ParseScene(path, f)
}

// ParseScene parses r as a scene file. name is used only for error
// messages (pass "" for anonymous readers).
func ParseScene(name string, r io.Reader) (*scene.Scene, error) {
	doc := &document{
		file:      name,
		materials: make(map[string]core.Material),
		scene:     scene.NewScene(scene.NewDefaultCamera(1.0)),
	}

	s := bufio.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := doc.parseLine(lineNo, line); err != nil {
			return nil, err
		}
		doc.errStack = append(doc.errStack, fmt.Sprintf("  while parsing line %d: %s", lineNo, line))
	}
	if err := s.Err(); err != nil {
		return nil, &SceneFileUnreadable{Path: name, Err: err}
	}

	if len(doc.scene.Shapes) == 0 && len(doc.scene.LightList) == 0 {
		return nil, &ParserFatal{
			File:    name,
			Line:    lineNo,
			Message: "scene is empty: no geometry or lights declared",
			Stack:   doc.errStack,
		}
	}

	return doc.scene, nil
}

func (doc *document) parseLine(lineNo int, line string) error {
	fields := strings.Fields(line)
	keyword := fields[0]
	args := fields[1:]

	switch keyword {
	case "camera":
		return doc.parseCamera(lineNo, args)
	case "background":
		return doc.parseBackground(lineNo, args)
	case "material":
		return doc.parseMaterial(lineNo, args)
	case "checker":
		return doc.parseChecker(lineNo, args)
	case "light":
		return doc.parseLight(lineNo, args)
	case "sphere":
		return doc.parseSphere(lineNo, args)
	case "plane":
		return doc.parsePlane(lineNo, args)
	case "triangle":
		return doc.parseTriangle(lineNo, args)
	default:
		return doc.syntaxErr(lineNo, "unrecognized directive %q", keyword)
	}
}

func (doc *document) syntaxErr(lineNo int, format string, args ...interface{}) error {
	return &SyntaxError{File: doc.file, Line: lineNo, Message: fmt.Sprintf(format, args...), Stack: doc.errStack}
}

func (doc *document) fatalErr(lineNo int, format string, args ...interface{}) error {
	return &ParserFatal{File: doc.file, Line: lineNo, Message: fmt.Sprintf(format, args...), Stack: doc.errStack}
}

func (doc *document) floats(lineNo int, args []string, n int) ([]float64, error) {
	if len(args) < n {
		return nil, doc.syntaxErr(lineNo, "expected %d numeric fields, got %d", n, len(args))
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, doc.syntaxErr(lineNo, "field %d (%q) is not a number", i+1, args[i])
		}
		out[i] = v
	}
	return out, nil
}

func vec3At(f []float64, i int) core.Vec3 {
	return core.Vec3{X: f[i], Y: f[i+1], Z: f[i+2]}
}

func (doc *document) parseCamera(lineNo int, args []string) error {
	f, err := doc.floats(lineNo, args, 11)
	if err != nil {
		return err
	}
	eye := vec3At(f, 0)
	lookAt := vec3At(f, 3)
	up := vec3At(f, 6)
	vfov, aspect := f[9], f[10]
	doc.scene.Cam = scene.NewCamera(eye, lookAt, up, vfov, aspect)
	return nil
}

// solidCubeMap is a constant-color background, the simplest possible
// core.CubeMap; anything beyond a flat color is outside the reader's
// scope (spec.md §6 treats cube-map decoding as an external collaborator
// the core never touches).
type solidCubeMap struct{ color core.Vec3 }

func (s solidCubeMap) Sample(core.Vec3) core.Vec3 { return s.color }

func (doc *document) parseBackground(lineNo int, args []string) error {
	f, err := doc.floats(lineNo, args, 3)
	if err != nil {
		return err
	}
	doc.scene.Cube = solidCubeMap{color: vec3At(f, 0)}
	return nil
}

func (doc *document) parseMaterial(lineNo int, args []string) error {
	if len(args) < 1 {
		return doc.syntaxErr(lineNo, "material directive requires a name")
	}
	name := args[0]
	f, err := doc.floats(lineNo, args[1:], 17)
	if err != nil {
		return err
	}
	m := &material.BasicMaterial{
		Ambient:         vec3At(f, 0),
		Diffuse:         vec3At(f, 3),
		Specular:        vec3At(f, 6),
		Shininess:       f[9],
		KrCoeff:         vec3At(f, 10),
		KtCoeff:         vec3At(f, 13),
		RefractiveIndex: f[16],
	}
	doc.materials[name] = m
	return nil
}

func (doc *document) parseChecker(lineNo int, args []string) error {
	if len(args) < 3 {
		return doc.syntaxErr(lineNo, "checker directive requires name, odd, even[, cellSize]")
	}
	name, oddName, evenName := args[0], args[1], args[2]
	cellSize := 1.0
	if len(args) >= 4 {
		v, ferr := strconv.ParseFloat(args[3], 64)
		if ferr != nil {
			return doc.syntaxErr(lineNo, "cellSize %q is not a number", args[3])
		}
		cellSize = v
	}

	odd, err := doc.lookupBasicMaterial(lineNo, oddName)
	if err != nil {
		return err
	}
	even, err := doc.lookupBasicMaterial(lineNo, evenName)
	if err != nil {
		return err
	}
	doc.materials[name] = material.NewCheckerboard(odd, even, cellSize)
	return nil
}

func (doc *document) lookupBasicMaterial(lineNo int, name string) (*material.BasicMaterial, error) {
	m, err := doc.lookupMaterial(lineNo, name)
	if err != nil {
		return nil, err
	}
	bm, ok := m.(*material.BasicMaterial)
	if !ok {
		return nil, doc.fatalErr(lineNo, "material %q is not a plain material (checker cells can't nest checkers)", name)
	}
	return bm, nil
}

func (doc *document) lookupMaterial(lineNo int, name string) (core.Material, error) {
	m, ok := doc.materials[name]
	if !ok {
		return nil, &TextureMappingError{File: doc.file, Line: lineNo, Name: name, Message: "referenced material is not declared"}
	}
	return m, nil
}

func (doc *document) parseLight(lineNo int, args []string) error {
	if len(args) < 1 {
		return doc.syntaxErr(lineNo, "light directive requires a kind (directional|point)")
	}
	switch args[0] {
	case "directional":
		f, err := doc.floats(lineNo, args[1:], 6)
		if err != nil {
			return err
		}
		doc.scene.LightList = append(doc.scene.LightList, lights.NewDirectionalLight(vec3At(f, 0), vec3At(f, 3)))
		return nil
	case "point":
		f, err := doc.floats(lineNo, args[1:], 9)
		if err != nil {
			return err
		}
		doc.scene.LightList = append(doc.scene.LightList, lights.NewPointLight(vec3At(f, 0), vec3At(f, 3), f[6], f[7], f[8]))
		return nil
	default:
		return doc.syntaxErr(lineNo, "unrecognized light kind %q", args[0])
	}
}

func (doc *document) parseSphere(lineNo int, args []string) error {
	if len(args) < 5 {
		return doc.syntaxErr(lineNo, "sphere requires cx cy cz radius material")
	}
	f, err := doc.floats(lineNo, args[:4], 4)
	if err != nil {
		return err
	}
	m, err := doc.lookupMaterial(lineNo, args[4])
	if err != nil {
		return err
	}
	doc.scene.Shapes = append(doc.scene.Shapes, geometry.NewSphere(vec3At(f, 0), f[3], m))
	return nil
}

func (doc *document) parsePlane(lineNo int, args []string) error {
	if len(args) < 7 {
		return doc.syntaxErr(lineNo, "plane requires px py pz nx ny nz material")
	}
	f, err := doc.floats(lineNo, args[:6], 6)
	if err != nil {
		return err
	}
	m, err := doc.lookupMaterial(lineNo, args[6])
	if err != nil {
		return err
	}
	doc.scene.Shapes = append(doc.scene.Shapes, geometry.NewPlane(vec3At(f, 0), vec3At(f, 3), m))
	return nil
}

func (doc *document) parseTriangle(lineNo int, args []string) error {
	if len(args) < 10 {
		return doc.syntaxErr(lineNo, "triangle requires x0 y0 z0 x1 y1 z1 x2 y2 z2 material")
	}
	f, err := doc.floats(lineNo, args[:9], 9)
	if err != nil {
		return err
	}
	m, err := doc.lookupMaterial(lineNo, args[9])
	if err != nil {
		return err
	}
	doc.scene.Shapes = append(doc.scene.Shapes, geometry.NewTriangle(vec3At(f, 0), vec3At(f, 3), vec3At(f, 6), m))
	return nil
}
