package api

import (
	"context"
	"net/http"
)

// Device is a device registered with the platform.
type Device struct {
	DeviceID   string `json:"deviceId"`
	Name       string `json:"name"`
	Label      string `json:"label,omitempty"`
	LocationID string `json:"locationId,omitempty"`
	RoomID     string `json:"roomId,omitempty"`
}

// DisplayName prefers the user-assigned label over the device name.
func (d Device) DisplayName() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}

// Location is a site devices belong to.
type Location struct {
	LocationID       string  `json:"locationId"`
	Name             string  `json:"name"`
	CountryCode      string  `json:"countryCode,omitempty"`
	Latitude         float64 `json:"latitude,omitempty"`
	Longitude        float64 `json:"longitude,omitempty"`
	TemperatureScale string  `json:"temperatureScale,omitempty"`
}

// Room is a named group of devices within a location.
type Room struct {
	RoomID     string `json:"roomId"`
	LocationID string `json:"locationId"`
	Name       string `json:"name"`
}

// Devices lists all devices visible to the caller.
func (c *Client) Devices(ctx context.Context) ([]Device, error) {
	return list[Device](ctx, c, "/v1/devices")
}

// Device fetches one device by id.
func (c *Client) Device(ctx context.Context, id string) (Device, error) {
	var device Device
	err := c.do(ctx, http.MethodGet, "/v1/devices/"+id, nil, &device)
	return device, err
}

// Locations lists all locations visible to the caller.
func (c *Client) Locations(ctx context.Context) ([]Location, error) {
	return list[Location](ctx, c, "/v1/locations")
}

// Location fetches one location by id.
func (c *Client) Location(ctx context.Context, id string) (Location, error) {
	var location Location
	err := c.do(ctx, http.MethodGet, "/v1/locations/"+id, nil, &location)
	return location, err
}

// CreateLocation creates a location from a request payload (typically the
// output of an interactive wizard).
func (c *Client) CreateLocation(ctx context.Context, request map[string]any) (Location, error) {
	var location Location
	err := c.do(ctx, http.MethodPost, "/v1/locations", request, &location)
	return location, err
}

// Rooms lists the rooms of a location.
func (c *Client) Rooms(ctx context.Context, locationID string) ([]Room, error) {
	return list[Room](ctx, c, "/v1/locations/"+locationID+"/rooms")
}
