package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/yungbote/mindpulse-backend/internal/data/db"
	types "github.com/yungbote/mindpulse-backend/internal/domain"
	pkgerrors "github.com/yungbote/mindpulse-backend/internal/pkg/errors"
	"github.com/yungbote/mindpulse-backend/internal/pkg/pointers"
)

const (
	DemoUsername = "jessica_chen"
	demoPassword = "password123"
)

// HashPassword bcrypt-hashes a plaintext password for storage.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SeedDemo stores the demo user with one metric snapshot and one survey dated now. It does
// nothing when the demo user already exists.
func SeedDemo(ctx context.Context, set Set, now time.Time) error {
	now = now.UTC()
	if _, err := set.Users.GetByUsername(ctx, nil, DemoUsername); err == nil {
		return nil
	} else if !errors.Is(err, pkgerrors.ErrNotFound) {
		return fmt.Errorf("seed: lookup demo user: %w", err)
	}

	hash, err := HashPassword(demoPassword)
	if err != nil {
		return fmt.Errorf("seed: hash password: %w", err)
	}
	users, err := set.Users.Create(ctx, nil, []*types.User{{
		Username:    DemoUsername,
		Password:    hash,
		DisplayName: "Jessica Chen",
		Email:       "jessica@example.com",
		JoinDate:    time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
	}})
	if db.IsConflict(err) {
		// Another instance seeded first.
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed: create user: %w", err)
	}
	u := users[0]

	if _, err := set.Metrics.Create(ctx, nil, []*types.Metric{{
		UserID:               u.ID,
		Date:                 now,
		MentalScore:          82,
		PhysicalActivity:     45,
		PhysicalActivityGoal: 30,
		Sleep:                390,
		SleepGoal:            480,
		ScreenTime:           312,
		ScreenTimeGoal:       180,
		AmbientNoise:         42,
		AmbientNoiseGoal:     60,
	}}); err != nil {
		return fmt.Errorf("seed: create metric: %w", err)
	}

	if _, err := set.Surveys.Create(ctx, nil, []*types.SurveyResponse{{
		UserID:           fmt.Sprintf("%d", u.ID),
		Date:             now,
		StressLevel:      2,
		OverallMood:      pointers.Int(3),
		SleepQuality:     pointers.Int(4),
		Overwhelmed:      pointers.String("Sometimes, but manageable"),
		SocialConnection: pointers.Int(3),
		Completed:        false,
	}}); err != nil {
		return fmt.Errorf("seed: create survey: %w", err)
	}
	return nil
}
