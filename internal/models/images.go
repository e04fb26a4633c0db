package models

import (
	"encoding/json"
	"strconv"
)

// ImageInfo is one image belonging to a place.
type ImageInfo struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// Layout slots for a place's image set. The consuming UI renders four fixed
// positions, so the grouping is a fixed-size array rather than a keyed map.
const (
	SlotFirst = iota
	SlotUpperMiddle
	SlotLowerMiddle
	SlotLast
	SlotCount
)

// GroupedImages maps each layout slot to its ordered images.
type GroupedImages [SlotCount][]ImageInfo

// MarshalJSON keeps the wire shape the frontend expects: an object keyed
// "1".."4", with empty slots serialized as empty arrays rather than null.
func (g GroupedImages) MarshalJSON() ([]byte, error) {
	out := make(map[string][]ImageInfo, SlotCount)
	for slot, imgs := range g {
		if imgs == nil {
			imgs = []ImageInfo{}
		}
		out[strconv.Itoa(slot+1)] = imgs
	}
	return json.Marshal(out)
}

// Total returns the number of images across all slots.
func (g GroupedImages) Total() int {
	n := 0
	for _, imgs := range g {
		n += len(imgs)
	}
	return n
}
