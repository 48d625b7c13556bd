package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Integer lists are stored as JSON text so the same rows stay readable to
// other consumers of the database. Encoding must be lossless and
// order-preserving for card numbers and the drawn sequence.

// EncodeInts marshals an integer list into a JSON column value. A nil
// slice encodes as [] so the column is never NULL.
func EncodeInts(nums []int) (datatypes.JSON, error) {
	if nums == nil {
		nums = []int{}
	}
	b, err := json.Marshal(nums)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// DecodeInts unmarshals a JSON column value into an integer list. An
// empty column decodes as an empty list.
func DecodeInts(data datatypes.JSON) ([]int, error) {
	if len(data) == 0 {
		return []int{}, nil
	}
	var nums []int
	if err := json.Unmarshal(data, &nums); err != nil {
		return nil, err
	}
	if nums == nil {
		nums = []int{}
	}
	return nums, nil
}
