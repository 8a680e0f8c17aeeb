package server

import (
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/openfloor/planvec/internal/geom"
	"github.com/openfloor/planvec/internal/raster"
	"github.com/openfloor/planvec/internal/scene"
)

// defaultDPI is assumed when the client does not state the scan resolution.
const defaultDPI = 300

// scans caches path-loaded images, so re-running the pipeline against the
// same file with different tuning skips the disk.
var scans = raster.NewImageCache()

// Healthz reports service liveness.
func Healthz(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Vectorise accepts a scanned page and returns the reconstructed scene
// document as JSON.
//
// The upload goes in the "image" multipart field; alternatively the "path"
// field names a server-local file to scan. Optional form fields, all with
// sensible defaults:
//
//	path            server-local image file, used when no upload is present
//	dpi             scan resolution for the output document
//	min_line_len    coarse Hough pass minimum stroke length (px)
//	canny1, canny2  Canny hysteresis thresholds (0-255)
//	approx_eps      contour simplification epsilon floor (px)
//	text_suppr      "true"/"false", erase annotation text before extraction
//	deskew          "true"/"false", straighten page skew
//	room_close      "true"/"false", synthesize room-closure segments
//	axis_snap_deg   snap tolerance to horizontal/vertical
//	merge_dist_px   endpoint distance for merging collinear fragments
//	extend_px       endpoint extension reach for T-junctions
//	close_px        maximum synthesized room-closure length
//	min_len_px      minimum surviving segment length
//	min_arc_deg     minimum accepted arc span
//	dup_tol_px      duplicate endpoint tolerance
//	dup_angle_deg   duplicate orientation tolerance
//	door_box        repeatable "x,y,w,h" door regions excluded from closure
func Vectorise(c fiber.Ctx) error {
	doc, status, err := vectorise(c)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(doc)
}

// VectoriseSVG runs the same pipeline as Vectorise and returns an SVG
// preview instead of the JSON document.
func VectoriseSVG(c fiber.Ctx) error {
	doc, status, err := vectorise(c)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.SendString(scene.ExportSVG(doc))
}

func vectorise(c fiber.Ctx) (*scene.Document, int, error) {
	img, status, err := scanImage(c)
	if err != nil {
		return nil, status, err
	}

	rOpts, err := rasterOptions(c)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}
	gOpts, err := engineOptions(c)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}
	userDoors, err := doorBoxFields(c)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}
	dpi, err := formInt(c, "dpi", defaultDPI)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}
	roomClose, err := formBool(c, "room_close", true)
	if err != nil {
		return nil, fiber.StatusBadRequest, err
	}

	page := raster.Analyze(img, rOpts)

	doors := append(userDoors, page.DoorBoxes...)
	res, err := geom.Reconstruct(page.Passes, page.Contours, doors, gOpts)
	if err != nil {
		return nil, fiber.StatusUnprocessableEntity, err
	}
	if !roomClose {
		res.Closures = nil
	}

	return scene.Build(res, page.Contours, doors, page.Width, page.Height, dpi), 0, nil
}

// scanImage resolves the request's scan: an "image" upload when present,
// otherwise a server-local "path" served through the image cache.
func scanImage(c fiber.Ctx) (image.Image, int, error) {
	if file, err := c.FormFile("image"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, fiber.StatusInternalServerError, fmt.Errorf("failed to open upload: %w", err)
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fiber.StatusInternalServerError, fmt.Errorf("failed to read upload: %w", err)
		}

		img, _, err := raster.DecodeBytes(data)
		if err != nil {
			return nil, fiber.StatusBadRequest, err
		}
		return img, 0, nil
	}

	if path := c.FormValue("path"); path != "" {
		img, err := scans.Load(path)
		if err != nil {
			return nil, fiber.StatusBadRequest, err
		}
		return img, 0, nil
	}

	return nil, fiber.StatusBadRequest, fmt.Errorf("image file or path required in multipart form data")
}

func rasterOptions(c fiber.Ctx) (raster.Options, error) {
	opts := raster.DefaultOptions()
	var err error
	if opts.MinLineLen, err = formInt(c, "min_line_len", opts.MinLineLen); err != nil {
		return opts, err
	}
	if opts.CannyLow, err = formInt(c, "canny1", opts.CannyLow); err != nil {
		return opts, err
	}
	if opts.CannyHigh, err = formInt(c, "canny2", opts.CannyHigh); err != nil {
		return opts, err
	}
	if opts.ApproxEps, err = formFloat(c, "approx_eps", opts.ApproxEps); err != nil {
		return opts, err
	}
	if opts.SuppressText, err = formBool(c, "text_suppr", opts.SuppressText); err != nil {
		return opts, err
	}
	if opts.Deskew, err = formBool(c, "deskew", opts.Deskew); err != nil {
		return opts, err
	}
	return opts, nil
}

func engineOptions(c fiber.Ctx) (geom.Options, error) {
	opts := geom.DefaultOptions()
	fields := []struct {
		name string
		dst  *float64
	}{
		{"axis_snap_deg", &opts.AxisSnapDeg},
		{"merge_dist_px", &opts.MergeDistPx},
		{"extend_px", &opts.ExtendPx},
		{"close_px", &opts.ClosePx},
		{"min_len_px", &opts.MinLenPx},
		{"min_arc_deg", &opts.MinArcDeg},
		{"dup_tol_px", &opts.DupTolPx},
		{"dup_angle_deg", &opts.DupAngleDeg},
	}
	for _, f := range fields {
		v, err := formFloat(c, f.name, *f.dst)
		if err != nil {
			return opts, err
		}
		*f.dst = v
	}
	return opts, nil
}

// doorBoxFields parses repeated door_box fields of the form "x,y,w,h".
func doorBoxFields(c fiber.Ctx) ([]geom.Rect, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	values := form.Value["door_box"]
	if len(values) == 0 {
		return nil, nil
	}

	boxes := make([]geom.Rect, 0, len(values))
	for _, v := range values {
		parts := strings.Split(v, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("door_box %q: want x,y,w,h", v)
		}
		nums := make([]float64, 4)
		for i, p := range parts {
			n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("door_box %q: %w", v, err)
			}
			nums[i] = n
		}
		boxes = append(boxes, geom.Box(nums[0], nums[1], nums[2], nums[3]))
	}
	return boxes, nil
}

func formInt(c fiber.Ctx, name string, def int) (int, error) {
	v := c.FormValue(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

func formFloat(c fiber.Ctx, name string, def float64) (float64, error) {
	v := c.FormValue(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

func formBool(c fiber.Ctx, name string, def bool) (bool, error) {
	v := c.FormValue(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
