package models

import "strconv"

// Ratio is a target aspect ratio expressed as width:height.
type Ratio struct {
	Width  uint16 `json:"width"`
	Height uint16 `json:"height"`
}

func (r Ratio) String() string {
	return strconv.FormatUint(uint64(r.Width), 10) + ":" + strconv.FormatUint(uint64(r.Height), 10)
}
