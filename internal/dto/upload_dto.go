package dto

type UploadImageResponse struct {
	Url string `json:"url"`
}

type DeleteImageRequest struct {
	Url string `json:"url" validate:"required,url"`
}
