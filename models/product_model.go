package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"productId,omitempty"`
	Name           string             `bson:"name" json:"name" validate:"required"`
	Description    string             `bson:"description" json:"description"`
	Price          string             `bson:"price" json:"price" validate:"required"`
	CompareAtPrice string             `bson:"compareAtPrice,omitempty" json:"compareAtPrice,omitempty"`
	Category       string             `bson:"category,omitempty" json:"category,omitempty"`
	Tags           []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Images         []string           `bson:"images,omitempty" json:"images,omitempty"`
	Rating         float64            `bson:"rating" json:"rating"`
	IsNew          bool               `bson:"isNew" json:"isNew"`
	IsSale         bool               `bson:"isSale" json:"isSale"`
	IsFeatured     bool               `bson:"isFeatured" json:"isFeatured"`
	IsTrending     bool               `bson:"isTrending" json:"isTrending"`
	Stock          int                `bson:"stock" json:"stock"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (p Product) IsInStock() bool {
	return p.Stock > 0 && p.IsActive
}
