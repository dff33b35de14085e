package steps

import "math/rand/v2"

// ReplyRule seeds one persona-to-persona reply after the initial pass.
type ReplyRule struct {
	Replier string
	Target  string
}

// DefaultReplyRules is who tends to reply to whom.
var DefaultReplyRules = []ReplyRule{
	{Replier: "doyun", Target: "mina"},
	{Replier: "jihoon", Target: "doyun"},
	{Replier: "eunseo", Target: "suhyun"},
}

// ReplyRulesPerPost is how many rules run per seeding pass.
const ReplyRulesPerPost = 2

// Rand is the random source used for rule sampling and responder choice.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Perm(n int) []int
}

type systemRand struct{}

func (systemRand) IntN(n int) int    { return rand.IntN(n) }
func (systemRand) Perm(n int) []int { return rand.Perm(n) }

// SystemRand uses the math/rand/v2 global source.
var SystemRand Rand = systemRand{}

// PickReplyRules samples count rules uniformly without replacement.
func PickReplyRules(rnd Rand, rules []ReplyRule, count int) []ReplyRule {
	if count > len(rules) {
		count = len(rules)
	}
	if count <= 0 {
		return nil
	}
	if rnd == nil {
		rnd = SystemRand
	}
	perm := rnd.Perm(len(rules))
	out := make([]ReplyRule, 0, count)
	for _, i := range perm[:count] {
		out = append(out, rules[i])
	}
	return out
}
