// Package scene loads a World from the line-oriented scene description
// format: camera/background/diffuse/metal/sphere directives, one per
// line, '#' comments and blank lines ignored.
package scene

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"go-pathtracer/pt"
)

const (
	defaultAspectRatio = 16.0 / 9.0
	defaultFocusDist    = 10.0
)

var vup = pt.Vec3{X: 0, Y: 1, Z: 0}

// Load parses a scene description from r into a World, given the
// target image dimensions (needed to build the Camera's aspect ratio
// and pixel resolution). Parse failures return a *pt.Error tagged
// pt.ErrWorldParse whose message names the offending token or the
// directive's expected arguments; only the metal and sphere
// argument-count errors quote the whole line.
func Load(r io.Reader, imageWidth, imageHeight int) (*pt.World, error) {
	world := pt.NewWorld(defaultCamera(imageWidth, imageHeight), pt.Color{X: 0.5, Y: 0.7, Z: 1.0})

	var current pt.Material = pt.NewLambertian(pt.Color{X: 0.5, Y: 0.5, Z: 0.5})
	sawCamera := false

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		directive := strings.ToLower(fields[0])
		args := fields[1:]

		switch directive {
		case "camera":
			cam, err := parseCamera(args, imageWidth, imageHeight)
			if err != nil {
				return nil, err
			}
			world.Camera = cam
			sawCamera = true

		case "background":
			c, err := parseColor(args)
			if err != nil {
				return nil, err
			}
			world.Background = c

		case "diffuse":
			c, err := parseColor(args)
			if err != nil {
				return nil, err
			}
			current = pt.NewLambertian(c)

		case "metal":
			if len(args) != 4 {
				return nil, pt.NewWorldParseError("metal requires 3 color components and a fuzz value: " + line)
			}
			c, err := parseColor(args[:3])
			if err != nil {
				return nil, err
			}
			fuzz, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return nil, pt.NewWorldParseError("could not parse fuzz: " + args[3])
			}
			current = pt.NewMetal(c, fuzz)

		case "sphere":
			if len(args) != 4 {
				return nil, pt.NewWorldParseError("sphere requires center xyz and radius: " + line)
			}
			center, err := parseVec3(args[:3])
			if err != nil {
				return nil, err
			}
			radius, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return nil, pt.NewWorldParseError("could not parse radius: " + args[3])
			}
			world.Add(pt.NewSphere(center, radius, current))

		default:
			return nil, pt.NewWorldParseError("unknown directive: " + fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, pt.NewResourceError("reading scene", err)
	}

	if !sawCamera {
		world.Camera = defaultCamera(imageWidth, imageHeight)
	}

	return world, nil
}

func parseCamera(args []string, imageWidth, imageHeight int) (*pt.Camera, error) {
	if len(args) != 8 {
		return nil, pt.NewWorldParseError("camera requires lookfrom(3) lookat(3) fov aperture")
	}
	lookFrom, err := parseVec3(args[0:3])
	if err != nil {
		return nil, err
	}
	lookAt, err := parseVec3(args[3:6])
	if err != nil {
		return nil, err
	}
	fov, err := strconv.ParseFloat(args[6], 64)
	if err != nil {
		return nil, pt.NewWorldParseError("could not parse fov: " + args[6])
	}
	aperture, err := strconv.ParseFloat(args[7], 64)
	if err != nil {
		return nil, pt.NewWorldParseError("could not parse aperture: " + args[7])
	}

	return pt.NewCamera(lookFrom, lookAt, vup, fov, defaultAspectRatio, aperture, defaultFocusDist, imageWidth, imageHeight), nil
}

func parseColor(args []string) (pt.Color, error) {
	v, err := parseVec3(args)
	if err != nil {
		return pt.Color{}, err
	}
	return v, nil
}

func parseVec3(args []string) (pt.Vec3, error) {
	if len(args) != 3 {
		return pt.Vec3{}, pt.NewWorldParseError("expected 3 components, got " + strconv.Itoa(len(args)))
	}
	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return pt.Vec3{}, pt.NewWorldParseError("could not parse component: " + args[0])
	}
	y, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return pt.Vec3{}, pt.NewWorldParseError("could not parse component: " + args[1])
	}
	z, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return pt.Vec3{}, pt.NewWorldParseError("could not parse component: " + args[2])
	}
	return pt.Vec3{X: x, Y: y, Z: z}, nil
}

// defaultCamera matches the book's canonical framing: looking down -z
// from the origin at a 90 degree vertical field of view.
func defaultCamera(imageWidth, imageHeight int) *pt.Camera {
	aspect := float64(imageWidth) / float64(imageHeight)
	return pt.NewCamera(
		pt.Point3{X: 0, Y: 0, Z: 0},
		pt.Point3{X: 0, Y: 0, Z: -1},
		vup,
		90,
		aspect,
		0,
		defaultFocusDist,
		imageWidth, imageHeight,
	)
}

// DefaultWorld returns the canonical three-sphere-over-a-ground-sphere
// scene, used when no scene file is supplied.
func DefaultWorld(imageWidth, imageHeight int) *pt.World {
	world := pt.NewWorld(defaultCamera(imageWidth, imageHeight), pt.Color{X: 0.5, Y: 0.7, Z: 1.0})

	world.Add(pt.NewSphere(pt.Point3{X: 0, Y: -100.5, Z: -1}, 100, pt.NewLambertian(pt.Color{X: 0.5, Y: 0.5, Z: 0.5})))
	world.Add(pt.NewSphere(pt.Point3{X: -1, Y: 0, Z: -1}, 0.5, pt.NewLambertian(pt.Color{X: 0.9, Y: 0.1, Z: 0.1})))
	world.Add(pt.NewSphere(pt.Point3{X: 0, Y: 0, Z: -1}, 0.5, pt.NewLambertian(pt.Color{X: 0.1, Y: 0.9, Z: 0.1})))
	world.Add(pt.NewSphere(pt.Point3{X: 1, Y: 0, Z: -1}, 0.5, pt.NewLambertian(pt.Color{X: 0.1, Y: 0.1, Z: 0.9})))

	return world
}
