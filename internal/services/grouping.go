package services

import "github.com/okristaps/koknese-be/internal/models"

// GroupImages partitions a place's images into the four layout slots. The
// input order is the store's listing order and must be preserved: the first
// image anchors slot 1, the last anchors slot 4, and the remainder is split
// between the two middle slots with the larger half on top.
func GroupImages(images []models.ImageInfo) models.GroupedImages {
	var groups models.GroupedImages

	switch n := len(images); {
	case n == 0:
	case n == 1:
		groups[models.SlotFirst] = images[:1]
	case n == 2:
		groups[models.SlotFirst] = images[:1]
		groups[models.SlotLast] = images[1:]
	default:
		groups[models.SlotFirst] = images[:1]
		groups[models.SlotLast] = images[n-1:]

		middle := images[1 : n-1]
		midPoint := (len(middle) + 1) / 2
		groups[models.SlotUpperMiddle] = middle[:midPoint]
		groups[models.SlotLowerMiddle] = middle[midPoint:]
	}
	return groups
}
