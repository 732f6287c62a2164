package models

type Tag struct {
	BaseModel

	Name  string `json:"name" gorm:"uniqueIndex;size:200"`
	Color string `json:"color" gorm:"uniqueIndex;size:7"`
	Slug  string `json:"slug" gorm:"uniqueIndex;size:200"`
}

type Ingredient struct {
	BaseModel

	Name            string `json:"name" gorm:"index;size:200"`
	MeasurementUnit string `json:"measurement_unit" gorm:"size:200"`
}
