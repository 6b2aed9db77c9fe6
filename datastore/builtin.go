package datastore

import "github.com/color-game/ranker/models"

// BuiltinPalettes returns the palettes that ship with the service
func BuiltinPalettes() []models.Palette {
	return []models.Palette{
		{
			Name: "html",
			Colors: []models.PaletteColor{
				{Name: "Black", Value: "#000000"},
				{Name: "Silver", Value: "#c0c0c0"},
				{Name: "Gray", Value: "#808080"},
				{Name: "White", Value: "#ffffff"},
				{Name: "Maroon", Value: "#800000"},
				{Name: "Red", Value: "#ff0000"},
				{Name: "Purple", Value: "#800080"},
				{Name: "Fuchsia", Value: "#ff00ff"},
				{Name: "Green", Value: "#008000"},
				{Name: "Lime", Value: "#00ff00"},
				{Name: "Olive", Value: "#808000"},
				{Name: "Yellow", Value: "#ffff00"},
				{Name: "Navy", Value: "#000080"},
				{Name: "Blue", Value: "#0000ff"},
				{Name: "Teal", Value: "#008080"},
				{Name: "Aqua", Value: "#00ffff"},
			},
		},
		{
			Name: "gray",
			Colors: []models.PaletteColor{
				{Name: "Black", Value: "#000000"},
				{Name: "Dim Gray", Value: "#696969"},
				{Name: "Gray", Value: "#808080"},
				{Name: "Dark Gray", Value: "#a9a9a9"},
				{Name: "Light Gray", Value: "#d3d3d3"},
				{Name: "Gainsboro", Value: "#dcdcdc"},
				{Name: "White Smoke", Value: "#f5f5f5"},
				{Name: "White", Value: "#ffffff"},
			},
		},
	}
}
