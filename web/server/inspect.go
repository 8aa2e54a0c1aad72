package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialName string                 `json:"materialName"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        [3]float64             `json:"color"`    // Shaded color before clamping
	ColorHex     string                 `json:"colorHex"` // Color as stored in the image
	Properties   map[string]interface{} `json:"properties"`
}

// extractMaterialInfo lists the shading parameters of a material
func (s *Server) extractMaterialInfo(mat material.Material) map[string]interface{} {
	return map[string]interface{}{
		"refractiveIndex":  mat.RefractiveIndex,
		"albedo":           [4]float64{mat.Albedo.X, mat.Albedo.Y, mat.Albedo.Z, mat.Albedo.W},
		"diffuseColor":     [3]float64{mat.DiffuseColor.X, mat.DiffuseColor.Y, mat.DiffuseColor.Z},
		"specularExponent": mat.SpecularExponent,
		"color":            colorHex(mat.DiffuseColor),
	}
}

// extractGeometryInfo describes the figure that was hit
func (s *Server) extractGeometryInfo(figure geometry.Figure, point core.Vec3) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := figure.(type) {
	case *geometry.Sphere:
		properties["center"] = [3]float64{geom.Center.X, geom.Center.Y, geom.Center.Z}
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		c := geom.Coefficients
		properties["coefficients"] = [4]float64{c.X, c.Y, c.Z, c.W}
		properties["roomMin"] = [3]float64{geom.Room.Min.X, geom.Room.Min.Y, geom.Room.Min.Z}
		properties["roomMax"] = [3]float64{geom.Room.Max.X, geom.Room.Max.Y, geom.Room.Max.Z}
		properties["atBorder"] = geom.AtBorder(point)
		return "plane", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts the camera ray through a pixel, shades it and
// describes the first figure it hits
func (s *Server) inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int, mode core.RenderMode) InspectResponse {
	ray := sceneObj.GetCamera().GetRay(pixelX, pixelY)
	c := renderer.NewRaytracer(sceneObj, renderer.NewDefaultLogger()).CastRay(ray, mode, 0)

	response := InspectResponse{
		Color:    [3]float64{c.X, c.Y, c.Z},
		ColorHex: colorHex(c),
	}

	hit, isHit := sceneObj.Intersect(ray, mode)
	if !isHit {
		return response
	}

	response.Hit = true
	response.MaterialName = hit.Material.Name
	response.Point = [3]float64{hit.Point.X, hit.Point.Y, hit.Point.Z}
	response.Normal = [3]float64{hit.Normal.X, hit.Normal.Y, hit.Normal.Z}
	response.Distance = hit.T

	geometryType, geometryProps := s.extractGeometryInfo(hit.Figure, hit.Point)
	response.GeometryType = geometryType
	response.Properties = map[string]interface{}{
		"material": s.extractMaterialInfo(hit.Material),
		"geometry": geometryProps,
	}
	return response
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	inspectReq := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, inspectReq); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		writeJSONError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := s.createScene(inspectReq)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	response := s.inspectPixel(sceneObj, pixelX, pixelY, inspectReq.Mode)
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

// colorHex formats a color the way it is quantized into the image
func colorHex(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", uint8(255*c.X), uint8(255*c.Y), uint8(255*c.Z))
}
