package models

import "time"

// Asset represents one stored media object in a family listing.
type Asset struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
	URL          string    `json:"url"`
}

// Visualization is a place's published 3D/HTML asset.
type Visualization struct {
	PlaceID      string    `json:"placeId"`
	Filename     string    `json:"filename"`
	Size         int64     `json:"size,omitempty"`
	LastModified time.Time `json:"lastModified,omitempty"`
	URL          string    `json:"url"`
}

// UploadResult is the response body for a successful upload.
type UploadResult struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	URL      string `json:"url"`
}
