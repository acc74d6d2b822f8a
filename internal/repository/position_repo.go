package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tritiya141-ux/project-ai-interview-system/internal/models"
)

// DefaultPositionsKey is the storage key carrying the whole position
// collection. The version suffix tracks the persisted document shape.
const DefaultPositionsKey = "hirehand-positions-v2"

// positionsSchema is the minimal contract a persisted collection must meet
// before the store will accept it instead of the built-in seed set.
const positionsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "title", "status"],
    "properties": {
      "id": {"type": "string", "minLength": 1},
      "title": {"type": "string"},
      "status": {"type": "string", "enum": ["Active", "Closed"]},
      "candidatesList": {
        "type": ["array", "null"],
        "items": {
          "type": "object",
          "required": ["id", "name"],
          "properties": {
            "id": {"type": "string", "minLength": 1},
            "verdict": {"type": "string", "enum": ["Go", "Conditional", "No-Go", ""]}
          }
        }
      }
    }
  }
}`

// PositionRepository persists the position collection wholesale: one key, the
// entire collection as a JSON array, written on every mutation.
type PositionRepository interface {
	Load(ctx context.Context) ([]models.Position, error)
	Save(ctx context.Context, positions []models.Position) error
}

type positionRepository struct {
	client *redis.Client
	key    string
	schema *jsonschema.Schema
	logger zerolog.Logger
}

// NewPositionRepository constructs a repository over the given Redis client.
// An empty key selects DefaultPositionsKey.
func NewPositionRepository(client *redis.Client, key string, logger zerolog.Logger) PositionRepository {
	if key == "" {
		key = DefaultPositionsKey
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("positions.json", strings.NewReader(positionsSchema)); err != nil {
		panic(fmt.Sprintf("invalid positions schema resource: %v", err))
	}
	schema := compiler.MustCompile("positions.json")

	return &positionRepository{
		client: client,
		key:    key,
		schema: schema,
		logger: logger.With().Str("component", "position_repository").Logger(),
	}
}

// Load reads the whole collection. A missing key, unparseable payload, or
// schema violation falls back to the seed set rather than failing the caller.
func (r *positionRepository) Load(ctx context.Context) ([]models.Position, error) {
	payload, err := r.client.Get(ctx, r.key).Result()
	if err == redis.Nil {
		return models.SeedPositions(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read positions: %w", err)
	}

	var document interface{}
	if err := json.Unmarshal([]byte(payload), &document); err != nil {
		r.logger.Warn().Err(err).Msg("stored positions are not valid JSON, using seed data")
		return models.SeedPositions(), nil
	}
	if err := r.schema.Validate(document); err != nil {
		r.logger.Warn().Err(err).Msg("stored positions failed schema validation, using seed data")
		return models.SeedPositions(), nil
	}

	var positions []models.Position
	if err := json.Unmarshal([]byte(payload), &positions); err != nil {
		r.logger.Warn().Err(err).Msg("stored positions could not be decoded, using seed data")
		return models.SeedPositions(), nil
	}
	return positions, nil
}

// Save serializes the entire collection and overwrites the stored value.
func (r *positionRepository) Save(ctx context.Context, positions []models.Position) error {
	if positions == nil {
		positions = []models.Position{}
	}
	payload, err := json.Marshal(positions)
	if err != nil {
		return fmt.Errorf("failed to encode positions: %w", err)
	}
	if err := r.client.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to store positions: %w", err)
	}
	return nil
}
