package services

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/lacuchara/reservation-app/models"
	"github.com/lacuchara/reservation-app/utils"
)

// BuildMenuPDF synthesizes a menu document from the dish list. It backs the
// menu download route when no PDF was uploaded for the restaurant.
func BuildMenuPDF(restaurant models.Restaurant, dishes []models.Dish) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Seed names carry accents and the euro sign; translate them into the
	// document's cp1252 encoding.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, tr(restaurant.Name), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(restaurant.Address), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("%s | %s", restaurant.CuisineType,
		utils.FormatPriceRange(restaurant.PriceMin, restaurant.PriceMax))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(dishes) == 0 {
		pdf.SetFont("Helvetica", "I", 12)
		pdf.CellFormat(0, 10, "No dishes found for this restaurant.", "", 1, "L", false, 0, "")
	} else {
		course := ""
		for _, dish := range dishes {
			if dish.Course != course {
				course = dish.Course
				pdf.Ln(2)
				pdf.SetFont("Helvetica", "B", 13)
				pdf.CellFormat(0, 8, tr(course), "B", 1, "L", false, 0, "")
			}
			pdf.SetFont("Helvetica", "", 11)
			pdf.CellFormat(130, 7, tr(dish.Name), "", 0, "L", false, 0, "")
			pdf.CellFormat(30, 7, tr(utils.FormatPrice(dish.Price)), "", 0, "R", false, 0, "")
			pdf.CellFormat(0, 7, fmt.Sprintf("%.1f/5", dish.Rating), "", 1, "R", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
