package dealcalc

import (
	"fmt"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain"
)

// Situation classifies a seller lead for reply drafting.
type Situation string

// Recognized lead situations.
const (
	Motivated     Situation = "motivated"
	PriceAnchored Situation = "price-anchored"
	Cold          Situation = "cold"
)

// IsValid checks if the situation is one of the recognized values.
func (s Situation) IsValid() bool {
	return s == Motivated || s == PriceAnchored || s == Cold
}

// DraftSellerResponse produces a short reply to a seller lead. Plain
// templating over the lead's name, situation, and property address.
func DraftSellerResponse(name string, situation Situation, address string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: lead name is required", domain.ErrInvalidArgument)
	}
	if address == "" {
		return "", fmt.Errorf("%w: property address is required", domain.ErrInvalidArgument)
	}
	if !situation.IsValid() {
		return "", fmt.Errorf("%w: situation must be motivated, price-anchored, or cold", domain.ErrInvalidArgument)
	}

	switch situation {
	case Motivated:
		return fmt.Sprintf(
			"Hi %s, thanks for reaching out about %s. We can move quickly — "+
				"we buy as-is, cover closing costs, and can close on your timeline. "+
				"When would be a good time for a short call to talk numbers?",
			name, address), nil
	case PriceAnchored:
		return fmt.Sprintf(
			"Hi %s, I appreciate you sharing your number for %s. We may be able to "+
				"get you full price with flexible terms — a structured offer often nets "+
				"sellers more than a cash discount. Open to hearing how that would work?",
			name, address), nil
	default: // Cold
		return fmt.Sprintf(
			"Hi %s, just checking in about %s. No pressure at all — if selling ever "+
				"becomes interesting, I'd be glad to put together a no-obligation offer. "+
				"Feel free to keep my number.",
			name, address), nil
	}
}
