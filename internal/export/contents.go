package export

import (
	"encoding/json"
	"strconv"

	"github.com/Mavwarf/appicon/internal/paths"
)

// ContentsFileName is the manifest Xcode reads from an .appiconset.
const ContentsFileName = "Contents.json"

// slot is one idiom/point-size/scale entry of an iOS app icon set.
type slot struct {
	idiom  string
	points string
	scale  int
	pixels int
}

var iosSlots = []slot{
	{"iphone", "20x20", 2, 40},
	{"iphone", "20x20", 3, 60},
	{"iphone", "29x29", 2, 58},
	{"iphone", "29x29", 3, 87},
	{"iphone", "40x40", 2, 80},
	{"iphone", "40x40", 3, 120},
	{"iphone", "60x60", 2, 120},
	{"iphone", "60x60", 3, 180},
	{"ipad", "20x20", 1, 20},
	{"ipad", "20x20", 2, 40},
	{"ipad", "29x29", 1, 29},
	{"ipad", "29x29", 2, 58},
	{"ipad", "40x40", 1, 40},
	{"ipad", "40x40", 2, 80},
	{"ipad", "76x76", 1, 76},
	{"ipad", "76x76", 2, 152},
	{"ipad", "83.5x83.5", 2, 167},
	{"ios-marketing", "1024x1024", 1, 1024},
}

type contentsImage struct {
	Filename string `json:"filename,omitempty"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

type contentsInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

type contentsFile struct {
	Images []contentsImage `json:"images"`
	Info   contentsInfo    `json:"info"`
}

// Contents builds the Contents.json manifest for the exported sizes.
// Every iOS slot is listed; a slot gets a filename when one of the sizes
// has the pixel dimension it needs. The first matching size wins.
func Contents(sizes []Size) ([]byte, error) {
	byPixels := make(map[int]string, len(sizes))
	for _, s := range sizes {
		if _, ok := byPixels[s.Pixels]; !ok {
			byPixels[s.Pixels] = paths.IconFileName(s.Label)
		}
	}

	cf := contentsFile{Info: contentsInfo{Author: "xcode", Version: 1}}
	for _, sl := range iosSlots {
		cf.Images = append(cf.Images, contentsImage{
			Filename: byPixels[sl.pixels],
			Idiom:    sl.idiom,
			Scale:    strconv.Itoa(sl.scale) + "x",
			Size:     sl.points,
		})
	}
	data, err := json.MarshalIndent(cf, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
