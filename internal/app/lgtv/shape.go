package lgtv

import "fmt"

// FieldMap names the raw JSON keys of one channel entry. The upstream
// renamed several of them between API generations.
type FieldMap struct {
	ID          string
	Name        string
	Number      string
	Logo        string
	Stream      string
	Description string
	Categories  string
}

// APIShape describes one generation of the upstream API: endpoint paths,
// the EPG query parameter for the channel identifier, and the channel
// field names.
type APIShape struct {
	Name           string
	ChannelsPath   string
	EPGPath        string
	ChannelIDParam string
	Fields         FieldMap
}

const (
	// ShapeV1 is the original API: /v1 paths, generic "id" field,
	// absolute URLs.
	ShapeV1 = "v1"
	// ShapeLineup is the newer API: /api/v1 paths, "channelId" field,
	// root-relative logo/stream URLs.
	ShapeLineup = "lineup"
)

var shapes = map[string]*APIShape{
	ShapeV1: {
		Name:           ShapeV1,
		ChannelsPath:   "/v1/channels",
		EPGPath:        "/v1/epg",
		ChannelIDParam: "channelId",
		Fields: FieldMap{
			ID:          "id",
			Name:        "name",
			Number:      "channelNumber",
			Logo:        "logoUrl",
			Stream:      "streamUrl",
			Description: "description",
			Categories:  "categories",
		},
	},
	ShapeLineup: {
		Name:           ShapeLineup,
		ChannelsPath:   "/api/v1/lineup",
		EPGPath:        "/api/v1/epg",
		ChannelIDParam: "channelId",
		Fields: FieldMap{
			ID:          "channelId",
			Name:        "name",
			Number:      "channelNumber",
			Logo:        "logoUrl",
			Stream:      "streamUrl",
			Description: "description",
			Categories:  "categories",
		},
	},
}

// ShapeByName resolves an API shape by its config name. An empty name
// selects the v1 shape.
func ShapeByName(name string) (*APIShape, error) {
	if name == "" {
		name = ShapeV1
	}
	shape, ok := shapes[name]
	if !ok {
		return nil, fmt.Errorf("unknown API shape: %q", name)
	}
	return shape, nil
}
