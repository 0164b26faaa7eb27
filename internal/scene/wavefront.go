package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"igloo/internal/graphics/gfx"

	"github.com/go-gl/mathgl/mgl32"
)

// Material is the subset of an MTL material the fixed-function path uses.
// Alpha comes from d or Tr; below 1 the mesh is drawn blended.
type Material struct {
	Name  string
	Kd    mgl32.Vec3
	Alpha float32
}

// Mesh is a run of triangles sharing one material.
type Mesh struct {
	Name     string
	Material *Material
	Geometry gfx.Mesh
}

type wavefrontReader struct {
	meshes    []*Mesh
	materials map[string]*Material
	curMat    *Material
	curName   string

	vertexList []mgl32.Vec3
	normalList []mgl32.Vec3
	uvList     []mgl32.Vec2

	// Includes currently being parsed, innermost first.
	errStack []string
}

func newWavefrontReader() *wavefrontReader {
	return &wavefrontReader{
		materials: make(map[string]*Material),
		curName:   "default",
	}
}

func (r *wavefrontReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)
	if len(r.errStack) == 0 {
		return fmt.Errorf("[%s: %d] %s", file, line, msg)
	}
	return fmt.Errorf("[%s: %d] %s\n%s", file, line, msg, strings.Join(r.errStack, "\n"))
}

func (r *wavefrontReader) defaultMaterial() *Material {
	if m, ok := r.materials[""]; ok {
		return m
	}
	m := &Material{Kd: mgl32.Vec3{0.7, 0.7, 0.7}, Alpha: 1}
	r.materials[""] = m
	return m
}

// current returns the mesh faces are appended to, opening a new one when
// the object name or material changed since the last face.
func (r *wavefrontReader) current() *Mesh {
	if r.curMat == nil {
		r.curMat = r.defaultMaterial()
	}
	if n := len(r.meshes); n > 0 {
		last := r.meshes[n-1]
		if last.Name == r.curName && last.Material == r.curMat {
			return last
		}
	}
	m := &Mesh{Name: r.curName, Material: r.curMat, Geometry: gfx.Mesh{Mode: gfx.Triangles}}
	r.meshes = append(r.meshes, m)
	return m
}

func (r *wavefrontReader) parseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	lineNum := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNum++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
			continue
		}

		switch tokens[0] {
		case "mtllib":
			if len(tokens) != 2 {
				return r.emitError(path, lineNum, "expected 1 argument for 'mtllib'; got %d", len(tokens)-1)
			}
			lib := filepath.Join(filepath.Dir(path), tokens[1])
			mf, err := os.Open(lib)
			if err != nil {
				return fmt.Errorf("%w: %w", r.emitError(path, lineNum, "open material library '%s'", tokens[1]), err)
			}
			r.errStack = append([]string{fmt.Sprintf("referenced from %s:%d", path, lineNum)}, r.errStack...)
			err = r.parseMaterials(lib, mf)
			mf.Close()
			if err != nil {
				return err
			}
			r.errStack = r.errStack[1:]
		case "usemtl":
			if len(tokens) != 2 {
				return r.emitError(path, lineNum, "expected 1 argument for 'usemtl'; got %d", len(tokens)-1)
			}
			m, ok := r.materials[tokens[1]]
			if !ok {
				return r.emitError(path, lineNum, "undefined material '%s'", tokens[1])
			}
			r.curMat = m
		case "o", "g":
			if len(tokens) < 2 {
				return r.emitError(path, lineNum, "expected a name for '%s'", tokens[0])
			}
			r.curName = tokens[1]
		case "v":
			v, err := parseVec3(tokens)
			if err != nil {
				return r.emitError(path, lineNum, "%s", err)
			}
			r.vertexList = append(r.vertexList, v)
		case "vn":
			v, err := parseVec3(tokens)
			if err != nil {
				return r.emitError(path, lineNum, "%s", err)
			}
			r.normalList = append(r.normalList, v)
		case "vt":
			v, err := parseVec2(tokens)
			if err != nil {
				return r.emitError(path, lineNum, "%s", err)
			}
			r.uvList = append(r.uvList, v)
		case "f":
			if err := r.parseFace(tokens); err != nil {
				return r.emitError(path, lineNum, "%s", err)
			}
		}
	}
	return scanner.Err()
}

func (r *wavefrontReader) parseMaterials(path string, src io.Reader) error {
	var (
		cur *Material
		err error
	)
	lineNum := 0
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		lineNum++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 || strings.HasPrefix(tokens[0], "#") {
			continue
		}

		if tokens[0] == "newmtl" {
			if len(tokens) != 2 {
				return r.emitError(path, lineNum, "expected 1 argument for 'newmtl'; got %d", len(tokens)-1)
			}
			cur = &Material{Name: tokens[1], Kd: mgl32.Vec3{0.7, 0.7, 0.7}, Alpha: 1}
			r.materials[cur.Name] = cur
			continue
		}
		if cur == nil {
			return r.emitError(path, lineNum, "'%s' before any 'newmtl'", tokens[0])
		}

		switch tokens[0] {
		case "Kd":
			cur.Kd, err = parseVec3(tokens)
		case "d":
			cur.Alpha, err = parseFloat32(tokens)
		case "Tr":
			var tr float32
			tr, err = parseFloat32(tokens)
			cur.Alpha = 1 - tr
		}
		if err != nil {
			return r.emitError(path, lineNum, "%s", err)
		}
	}
	return scanner.Err()
}

// parseFace accepts polygons with three or more corners and fan-triangulates
// them. Corners use v, v/t, v//n or v/t/n; indices are 1-based and may be
// negative to count back from the end of the list.
func (r *wavefrontReader) parseFace(tokens []string) error {
	if len(tokens) < 4 {
		return fmt.Errorf("face needs at least 3 vertices; got %d", len(tokens)-1)
	}

	corners := make([]gfx.Vertex, 0, len(tokens)-1)
	for arg, tok := range tokens[1:] {
		parts := strings.Split(tok, "/")
		if len(parts) > 3 || parts[0] == "" {
			return fmt.Errorf("malformed face vertex %d: %q", arg, tok)
		}

		var v gfx.Vertex
		idx, err := selectIndex(parts[0], len(r.vertexList))
		if err != nil {
			return fmt.Errorf("vertex coord for face vertex %d: %w", arg, err)
		}
		v.Position = r.vertexList[idx]

		if len(parts) > 1 && parts[1] != "" {
			idx, err = selectIndex(parts[1], len(r.uvList))
			if err != nil {
				return fmt.Errorf("tex coord for face vertex %d: %w", arg, err)
			}
			v.UV = r.uvList[idx]
		}
		if len(parts) > 2 && parts[2] != "" {
			idx, err = selectIndex(parts[2], len(r.normalList))
			if err != nil {
				return fmt.Errorf("normal for face vertex %d: %w", arg, err)
			}
			v.Normal = r.normalList[idx]
		}
		corners = append(corners, v)
	}

	m := r.current()
	for i := 1; i+1 < len(corners); i++ {
		m.Geometry.Vertices = append(m.Geometry.Vertices, corners[0], corners[i], corners[i+1])
	}
	return nil
}

func selectIndex(tok string, count int) (int, error) {
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		i += count
	} else {
		i--
	}
	if i < 0 || i >= count {
		return 0, fmt.Errorf("index %s out of range (have %d)", tok, count)
	}
	return i, nil
}

func parseFloat32(tokens []string) (float32, error) {
	if len(tokens) != 2 {
		return 0, fmt.Errorf("expected 1 argument for '%s'; got %d", tokens[0], len(tokens)-1)
	}
	v, err := strconv.ParseFloat(tokens[1], 32)
	return float32(v), err
}

func parseVec2(tokens []string) (mgl32.Vec2, error) {
	var out mgl32.Vec2
	// vt may carry an optional third component.
	if len(tokens) < 3 || len(tokens) > 4 {
		return out, fmt.Errorf("expected 2 arguments for '%s'; got %d", tokens[0], len(tokens)-1)
	}
	for i := 0; i < 2; i++ {
		v, err := strconv.ParseFloat(tokens[i+1], 32)
		if err != nil {
			return out, err
		}
		out[i] = float32(v)
	}
	return out, nil
}

func parseVec3(tokens []string) (mgl32.Vec3, error) {
	var out mgl32.Vec3
	// v may carry an optional w component.
	if len(tokens) < 4 || len(tokens) > 5 {
		return out, fmt.Errorf("expected 3 arguments for '%s'; got %d", tokens[0], len(tokens)-1)
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(tokens[i+1], 32)
		if err != nil {
			return out, err
		}
		out[i] = float32(v)
	}
	return out, nil
}
