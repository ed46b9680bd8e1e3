package token

import (
	"fmt"
	"time"

	"github.com/go-redis/redis"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(client *redis.Client) *tokenRepository {
	return &tokenRepository{client}
}

type tokenRepository struct {
	client *redis.Client
}

func (r tokenRepository) SetRefreshToken(userId uint, tokenId string, expiresIn time.Duration) error {
	return r.client.Set(refreshTokenKey(userId, tokenId), "valid", expiresIn).Err()
}

// DeleteRefreshToken removes a single refresh token. An error is returned when the token wasn't
// there, which is how rotation detects reuse of an already rotated token.
func (r tokenRepository) DeleteRefreshToken(userId uint, tokenId string) error {
	deleted, err := r.client.Del(refreshTokenKey(userId, tokenId)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete refresh token: %v", err)
	}
	if deleted < 1 {
		return fmt.Errorf("no refresh token found for user %d", userId)
	}
	return nil
}

func (r tokenRepository) DeleteRefreshTokens(userId uint) error {
	keys, err := r.client.Keys(fmt.Sprintf("refreshToken:%d:*", userId)).Result()
	if err != nil {
		return fmt.Errorf("failed to find refresh tokens: %v", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(keys...).Err()
}

func refreshTokenKey(userId uint, tokenId string) string {
	return fmt.Sprintf("refreshToken:%d:%s", userId, tokenId)
}
