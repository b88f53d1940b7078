package factory

import "github.com/genemuffin/genemuffind/models"

func NewCartItem(id string) models.CartItem {
	return models.CartItem{
		ID:       id,
		Name:     "DNA Test Kit",
		Price:    0.05,
		Quantity: 1,
		Image:    "/images/dna-test-kit.png",
		Currency: "ETH",
	}
}

func NewDataListingItem(id string) models.CartItem {
	return models.CartItem{
		ID:       id,
		Name:     "Genetic Data Listing",
		Price:    0.25,
		Quantity: 1,
		Image:    "/images/gene-nft.png",
		Currency: "ETH",
	}
}
