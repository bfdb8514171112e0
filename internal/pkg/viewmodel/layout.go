package viewmodel

import "github.com/gofiber/fiber/v2"

type Layout struct {
	Page          string
	Locale        string
	Dir           string
	SwitchURL     string
	FromProtected bool
	IsAdmin       bool
	IsError       bool
	Msg           fiber.Map
	CSRF          string
	T             Text
}
