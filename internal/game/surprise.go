package game

import "fmt"

// SurpriseKey names one of the wheel's surprise effects.
type SurpriseKey string

const (
	SurpriseBomb         SurpriseKey = "bomb"
	SurpriseDoublePoints SurpriseKey = "doublePoints"
	SurpriseEraser       SurpriseKey = "eraser"
	SurpriseSwap         SurpriseKey = "swap"
	SurpriseGift         SurpriseKey = "gift"
	SurpriseGold         SurpriseKey = "gold"
	SurpriseKnight       SurpriseKey = "knight"
	SurpriseCollect      SurpriseKey = "collect"
	SurpriseRocket       SurpriseKey = "rocket"
	SurpriseSteal        SurpriseKey = "steal"
	SurpriseVirus        SurpriseKey = "virus"
)

// AllSurprises lists every known key in wheel-draw order. The order
// matters: the weighted draw walks this slice, so a scripted random
// source maps deterministically to a key.
var AllSurprises = []SurpriseKey{
	SurpriseDoublePoints,
	SurpriseGift,
	SurpriseGold,
	SurpriseRocket,
	SurpriseSwap,
	SurpriseSteal,
	SurpriseKnight,
	SurpriseCollect,
	SurpriseBomb,
	SurpriseEraser,
	SurpriseVirus,
}

// surpriseWeights biases the draw toward milder effects. Roster-wiping
// and single-team-punishing keys carry the lowest weight.
var surpriseWeights = map[SurpriseKey]int{
	SurpriseDoublePoints: 3,
	SurpriseGift:         3,
	SurpriseGold:         2,
	SurpriseRocket:       2,
	SurpriseSwap:         2,
	SurpriseSteal:        2,
	SurpriseKnight:       2,
	SurpriseCollect:      2,
	SurpriseBomb:         1,
	SurpriseEraser:       1,
	SurpriseVirus:        1,
}

// Known reports whether the key is one of the eleven defined effects.
func (k SurpriseKey) Known() bool {
	_, ok := surpriseWeights[k]
	return ok
}

const (
	bombPenalty   = 50
	goldBonus     = 100
	knightPenalty = 50
	collectAmount = 50
	rocketBonus   = 50
	stealAmount   = 30
)

var giftAmounts = []int{25, 50, 75, 100}

// SurpriseResult describes one applied (or refused) surprise effect.
type SurpriseResult struct {
	Key         SurpriseKey
	Description string
	// DoublePointsFor is the ID of the team whose next correct answer
	// scores double, or 0 when the effect arms nothing.
	DoublePointsFor int
	// Applied is false when the key was unrecognized and nothing changed.
	Applied bool
}

// applySurprise mutates the ledger according to the effect rules and
// returns a human-readable summary. It holds no state of its own; the one
// deferred effect (double points) is returned as an instruction for the
// engine to arm. An unknown key fails closed: no mutation, Applied false,
// and the caller still advances the turn.
func applySurprise(key SurpriseKey, l *Ledger, currentTeamID int, rng Rand) SurpriseResult {
	res := SurpriseResult{Key: key, Applied: true}
	current, _ := l.Team(currentTeamID)

	switch key {
	case SurpriseBomb:
		lost := -l.Award(currentTeamID, -bombPenalty)
		res.Description = fmt.Sprintf("The bomb went off! %s loses %d points!", current.Name, lost)

	case SurpriseDoublePoints:
		res.DoublePointsFor = currentTeamID
		res.Description = "Double points armed! The next correct answer counts twice!"

	case SurpriseEraser:
		l.SetAll(0)
		res.Description = "The eraser struck! Every team's score is wiped to zero!"

	case SurpriseSwap:
		if l.Len() < 2 {
			res.Description = "Score swap fizzled: there is nobody to trade with!"
			break
		}
		a, b := pickTwo(rng, l.Len())
		teams := l.Teams()
		ta, tb := teams[a], teams[b]
		l.Swap(ta.ID, tb.ID)
		res.Description = fmt.Sprintf("%s and %s swapped their scores!", ta.Name, tb.Name)

	case SurpriseGift:
		teams := l.Teams()
		target := teams[rng.IntN(len(teams))]
		amount := giftAmounts[rng.IntN(len(giftAmounts))]
		l.Award(target.ID, amount)
		res.Description = fmt.Sprintf("A gift of %d points lands on %s!", amount, target.Name)

	case SurpriseGold:
		l.Award(currentTeamID, goldBonus)
		res.Description = fmt.Sprintf("Gold! %s strikes it rich for %d points!", current.Name, goldBonus)

	case SurpriseKnight:
		teams := l.Teams()
		target := teams[rng.IntN(len(teams))]
		lost := -l.Award(target.ID, -knightPenalty)
		res.Description = fmt.Sprintf("The knight charges! %s loses %d points!", target.Name, lost)

	case SurpriseCollect:
		lowest := l.Lowest()
		if lowest.Score == 0 {
			res.Description = "The collector came around, but found nothing to collect!"
			break
		}
		taken := -l.Award(lowest.ID, -collectAmount)
		res.Description = fmt.Sprintf("The collector takes %d points from %s!", taken, lowest.Name)

	case SurpriseRocket:
		leader := l.Highest()
		l.Award(leader.ID, rocketBonus)
		res.Description = fmt.Sprintf("Rocket boost! Leader %s gains another %d points!", leader.Name, rocketBonus)

	case SurpriseSteal:
		if l.Len() < 2 {
			res.Description = "The thief found nobody worth robbing!"
			break
		}
		a, b := pickTwo(rng, l.Len())
		teams := l.Teams()
		from, to := teams[a], teams[b]
		moved := l.Transfer(from.ID, to.ID, stealAmount)
		res.Description = fmt.Sprintf("Heist! %d points stolen from %s and handed to %s!", moved, from.Name, to.Name)

	case SurpriseVirus:
		l.SetAll(0)
		res.Description = "A virus spread through the scoreboard! Every score is infected and reset!"

	default:
		res.Applied = false
		res.Description = fmt.Sprintf("Unknown surprise %q: nothing happens.", string(key))
	}

	return res
}

// pickTwo draws two distinct roster positions, rerolling the second until
// it differs from the first.
func pickTwo(rng Rand, n int) (int, int) {
	a := rng.IntN(n)
	b := rng.IntN(n)
	for b == a {
		b = rng.IntN(n)
	}
	return a, b
}
