package model

// BrandPage is the public view of one brand.
type BrandPage struct {
	Brand    Brand
	Models   []DeviceModel
	Products []Product
}

// ModelPage is the public view of one model of a brand.
type ModelPage struct {
	Brand    Brand
	Model    DeviceModel
	Products []Product
}
