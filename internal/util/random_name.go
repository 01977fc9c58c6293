package util

import (
	"fmt"
	"math/rand"

	"holdem-engine/internal/rng"
)

var random = rand.New(rand.NewSource(rng.Seed())) // nolint:gosec

var adjectives = []string{
	"Bluffing", "Folding", "Raising", "Limping", "Stacking", "Shoving", "Grinding", "Lucky", "Patient", "Reckless",
	"Tilted", "Stoic", "Sneaky", "Loose", "Tight", "Aggressive", "Passive", "Calm", "Wild", "Cunning",
	"Fearless", "Cautious", "Bold", "Quiet", "Steady", "Slick", "Crafty", "Daring", "Icy", "Brash",
}

var animals = []string{
	"Shark", "Fish", "Fox", "Wolf", "Owl", "Tiger", "Mouse", "Otter", "Badger", "Raven",
	"Viper", "Mongoose", "Panther", "Hawk", "Lynx", "Cobra", "Walrus", "Ferret", "Jackal", "Heron",
	"Stoat", "Bison", "Crane", "Gecko", "Marmot", "Osprey", "Puffin", "Weasel", "Condor", "Ocelot",
}

// GetRandomName returns a random bot name by combining an adjective with an animal
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	animalsIndex := random.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
