// File: internal/repository/item/seed.go
package item

import (
	"context"

	"campuscompass/internal/domain"
)

// demoItems are the sample reports shown on a fresh board, oldest
// first so that head insertion leaves the newest report on top.
var demoItems = []domain.ReportItemInput{
	{
		Name:        "Organic Chemistry Textbook",
		Description: `8th Edition of "Organic Chemistry" by Paula Yurkanis Bruice. Has some highlighting in the first few chapters.`,
		Category:    string(domain.CategoryBooks),
		Status:      string(domain.StatusLost),
		Location:    "Chemistry Building, Room 101",
		Contact:     "student2@example.com",
	},
	{
		Name:        "MacBook Pro 14\"",
		Description: "A silver MacBook Pro with a small scratch on the corner and a sticker of a cat.",
		Category:    string(domain.CategoryElectronics),
		Status:      string(domain.StatusLost),
		Location:    "Library, 2nd Floor",
		Contact:     "student1@example.com",
	},
	{
		Name:        "Hydro Flask Water Bottle",
		Description: "A blue Hydro Flask, 32 oz. It is covered in various national park stickers.",
		Category:    string(domain.CategoryOther),
		Status:      string(domain.StatusFound),
		Location:    "Campus Gym",
		Contact:     "finder1@example.com",
	},
	{
		Name:        "Wireless Mouse",
		Description: "A gray wireless Logitech mouse. Was found near the computer lab entrance.",
		Category:    string(domain.CategoryElectronics),
		Status:      string(domain.StatusFound),
		Location:    "Tech Center",
		Contact:     "finder4@example.com",
	},
	{
		Name:        "Student ID Card",
		Description: "Student ID for Jane Doe. The picture is slightly faded.",
		Category:    string(domain.CategoryIDCards),
		Status:      string(domain.StatusFound),
		Location:    "Student Union Cafeteria",
		Contact:     "finder2@example.com",
	},
	{
		Name:        "Black North Face Jacket",
		Description: "A black North Face jacket, size Medium. There is a small tear on the left sleeve.",
		Category:    string(domain.CategoryClothing),
		Status:      string(domain.StatusFound),
		Location:    "Bus Stop near Main Gate",
		Contact:     "finder3@example.com",
	},
}

// SeedDemoItems fills an empty repository with the sample reports.
func SeedDemoItems(ctx context.Context, repo ItemRepository) error {
	for _, in := range demoItems {
		if _, err := repo.Create(ctx, in); err != nil {
			return err
		}
	}
	return nil
}
