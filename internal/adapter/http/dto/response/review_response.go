package response

import "survey_tracker/internal/domain/entities"

type ReviewResponse struct {
	Organization    string `json:"organization"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Quality         int    `json:"quality"`
	Responsiveness  int    `json:"responsiveness"`
	DeliveredOnTime int    `json:"delivered_on_time"`
	OverallReview   int    `json:"overall_review"`
	Notes           string `json:"notes"`
}

func FromReview(r entities.Review) ReviewResponse {
	return ReviewResponse(r)
}

func FromReviews(list []entities.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(list))
	for i, r := range list {
		out[i] = FromReview(r)
	}
	return out
}

type DisciplineResponse struct {
	Name        string   `json:"name"`
	SurveyTypes []string `json:"survey_types"`
}

func FromCatalog(catalog []entities.Discipline) []DisciplineResponse {
	out := make([]DisciplineResponse, len(catalog))
	for i, d := range catalog {
		out[i] = DisciplineResponse{Name: d.Name, SurveyTypes: append([]string(nil), d.SurveyTypes...)}
	}
	return out
}
