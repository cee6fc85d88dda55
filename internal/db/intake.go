package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/maya/adcopy-agent/internal/types"
)

// GetIntake retrieves the structured intake record for a client.
// Returns (nil, nil) when the client has not submitted an intake form.
func (db *DB) GetIntake(ctx context.Context, clientID string) (*types.IntakeRecord, error) {
	var rec types.IntakeRecord
	err := db.pool.QueryRow(ctx,
		`SELECT client_id, community_name, brand_guidelines, tone, personality,
		        communication_style, brand_values, primary_audience, age_ranges,
		        income_levels, lifestyle, motivations, pain_points, amenities,
		        unique_features, location_advantages, price_point, special_offers,
		        differentiators, competitor_names, competitor_edges, market_position
		 FROM client_intake WHERE client_id = $1`,
		clientID,
	).Scan(
		&rec.ClientID, &rec.CommunityName, &rec.BrandGuidelines, &rec.Tone, &rec.Personality,
		&rec.CommunicationStyle, &rec.BrandValues, &rec.PrimaryAudience, &rec.AgeRanges,
		&rec.IncomeLevels, &rec.Lifestyle, &rec.Motivations, &rec.PainPoints, &rec.Amenities,
		&rec.UniqueFeatures, &rec.LocationAdvantages, &rec.PricePoint, &rec.SpecialOffers,
		&rec.Differentiators, &rec.CompetitorNames, &rec.CompetitorEdges, &rec.MarketPosition,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get intake for client %s: %w", clientID, err)
	}
	return &rec, nil
}
