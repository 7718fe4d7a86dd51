package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"
)

// CartCookieName holds the guest cart: a base64url JSON list of
// {product_id, quantity} plus an HMAC-SHA256 signature segment.
const CartCookieName = "stech_cart"

const cartCookieMaxAge = 30 * 24 * 60 * 60 // 30 days

// CookieCartStore keeps cart lines in a signed cookie on the request itself.
// The cookie is decoded once per request and rewritten wholesale on every
// mutation. A cookie that fails signature or JSON checks reads as an empty
// cart; lines with a missing product id are kept in the cookie and skipped by
// callers when they scan.
type CookieCartStore struct {
	c      *gin.Context
	secret []byte
	lines  []CartLine
	loaded bool
}

func NewCookieCartStore(c *gin.Context, secret []byte) *CookieCartStore {
	return &CookieCartStore{c: c, secret: secret}
}

func (s *CookieCartStore) Get() ([]CartLine, error) {
	s.load()
	return s.lines, nil
}

func (s *CookieCartStore) GetOne(productID string) (*CartLine, error) {
	s.load()
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			line := s.lines[i]
			return &line, nil
		}
	}
	return nil, ErrNotFound
}

func (s *CookieCartStore) Add(line CartLine) (bool, error) {
	s.load()
	s.lines = append(s.lines, line)
	s.save()
	return true, nil
}

func (s *CookieCartStore) UpdateQuantity(productID string, qty int) (bool, error) {
	s.load()
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = qty
			s.save()
			return true, nil
		}
	}
	return false, nil
}

func (s *CookieCartStore) Remove(productID string) (bool, error) {
	s.load()
	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.save()
			return true, nil
		}
	}
	return false, nil
}

func (s *CookieCartStore) load() {
	if s.loaded {
		return
	}
	s.loaded = true
	s.lines = []CartLine{}

	raw, err := s.c.Cookie(CartCookieName)
	if err != nil {
		return
	}
	s.lines = DecodeCartCookie(raw, s.secret)
}

func (s *CookieCartStore) save() {
	s.c.SetCookie(CartCookieName, EncodeCartCookie(s.lines, s.secret), cartCookieMaxAge, "/", "", false, true)
}

// EncodeCartCookie serializes cart lines into the signed cookie value:
// base64url(JSON) + "." + base64url(HMAC-SHA256 over the payload).
func EncodeCartCookie(lines []CartLine, secret []byte) string {
	data, err := json.Marshal(lines)
	if err != nil {
		return ""
	}
	payload := base64.RawURLEncoding.EncodeToString(data)
	return payload + "." + signCartPayload(payload, secret)
}

// DecodeCartCookie parses a cookie value back into cart lines. A value that
// fails the signature or either decoding step reads as an empty cart.
func DecodeCartCookie(raw string, secret []byte) []CartLine {
	payload, sig, found := strings.Cut(raw, ".")
	if !found || !hmac.Equal([]byte(sig), []byte(signCartPayload(payload, secret))) {
		return []CartLine{}
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return []CartLine{}
	}

	var lines []CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return []CartLine{}
	}
	return lines
}

func signCartPayload(payload string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
