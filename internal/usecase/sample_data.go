package usecase

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
)

const sampleTurnaroundDays = 14

func intPtr(v int) *int { return &v }

// SampleQuotes returns the demo quotes loaded when SEED_SAMPLE_DATA is set. Both start pending,
// so no project exists until one is instructed.
func SampleQuotes(today civil.Date) []QuoteInput {
	turnaround := today.AddDays(sampleTurnaroundDays)
	return []QuoteInput{
		{
			Discipline:   "Building Survey",
			SurveyType:   "Level 2",
			Organization: "Survey Co Ltd",
			Contact:      "John Smith",
			Email:        "john@surveyco.com",
			LineItems: []LineItemInput{
				{Description: "Level 2 Survey", Amount: 2000, Quantity: intPtr(1)},
				{Description: "Additional Floor", Amount: 500, Quantity: intPtr(1)},
			},
			TurnaroundDate: turnaround,
		},
		{
			Discipline:   "Measured Survey",
			SurveyType:   "Floor Plans",
			Organization: "Map Masters",
			Contact:      "Jane Doe",
			Email:        "jane@mapmasters.com",
			LineItems: []LineItemInput{
				{Description: "Floor Plans", Amount: 1500, Quantity: intPtr(1)},
				{Description: "Elevations", Amount: 300, Quantity: intPtr(1)},
			},
			TurnaroundDate: turnaround,
		},
	}
}

func SeedSampleQuotes(ctx context.Context, quotes IQuoteUseCase, today civil.Date) error {
	for _, in := range SampleQuotes(today) {
		if _, err := quotes.AddQuote(ctx, in); err != nil {
			return fmt.Errorf("seed quote for %s: %w", in.Organization, err)
		}
	}
	return nil
}
