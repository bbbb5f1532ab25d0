package application

import (
	"context"
	"strings"

	"servdash/internal/domain"
	"servdash/internal/domain/entities"
	"servdash/internal/ports/output"
	"servdash/pkg/discord"
)

type ProfileService struct {
	profileRepo output.ProfileRepository
}

func NewProfileService(profileRepo output.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) GetProfile(ctx context.Context, discordID string) (*entities.UbisoftProfile, error) {
	if !discord.ValidSnowflake(discordID) {
		return nil, domain.Invalid("discordId", "identifiant Discord attendu")
	}
	return s.profileRepo.FindByDiscordID(ctx, discordID)
}

func (s *ProfileService) UpsertProfile(ctx context.Context, discordID, ubisoftID string) (*entities.UbisoftProfile, error) {
	if !discord.ValidSnowflake(discordID) {
		return nil, domain.Invalid("discordId", "identifiant Discord attendu")
	}
	ubisoftID = strings.TrimSpace(ubisoftID)
	if ubisoftID == "" {
		return nil, domain.Invalid("ubisoftId", "requis")
	}
	profile := &entities.UbisoftProfile{DiscordID: discordID, UbisoftID: ubisoftID}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
