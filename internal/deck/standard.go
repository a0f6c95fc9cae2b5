package deck

import "github.com/arcanaland/oracle/internal/card"

// Keyword texts synthesized from the Rider-Waite, Golden Dawn, and Thoth
// traditions.

var majorNames = map[int]string{
	0: "The Fool", 1: "The Magician", 2: "The High Priestess", 3: "The Empress",
	4: "The Emperor", 5: "The Hierophant", 6: "The Lovers", 7: "The Chariot",
	8: "Strength", 9: "The Hermit", 10: "Wheel of Fortune", 11: "Justice",
	12: "The Hanged Man", 13: "Death", 14: "Temperance", 15: "The Devil",
	16: "The Tower", 17: "The Star", 18: "The Moon", 19: "The Sun",
	20: "Judgement", 21: "The World",
}

var majorKeywords = map[int]string{
	0:  "New beginnings, innocence, spontaneity, trust, faith, leap of faith",
	1:  "Manifestation, skill, willpower, action, creation, resourcefulness, focused intention",
	2:  "Intuition, secrets, hidden knowledge, subconscious, mystery, divine feminine",
	3:  "Abundance, fertility, nurturing, nature, creativity, manifestation, earth mother",
	4:  "Authority, structure, control, father figure, stability, leadership, establishment",
	5:  "Tradition, wisdom, institutions, conformity, spiritual guidance, organized belief",
	6:  "Choice, partnership, harmony, union, alignment, values, soul connection",
	7:  "Determination, victory, willpower, control, forward movement, self-discipline",
	8:  "Courage, inner strength, compassion, patience, taming wild nature, gentle power",
	9:  "Introspection, soul searching, solitude, inner guidance, wisdom, spiritual isolation",
	10: "Cycles, destiny, change, luck, turning points, karma, fate",
	11: "Balance, fairness, truth, law, cause and effect, accountability, karmic justice",
	12: "Surrender, pause, new perspectives, sacrifice, letting go, suspension",
	13: "Transformation, endings, change, rebirth, transition, release, new chapter",
	14: "Moderation, balance, patience, synthesis, healing, middle path, alchemy",
	15: "Bondage, materialism, addiction, shadow work, limitation, breaking chains",
	16: "Upheaval, revelation, sudden change, chaos, awakening, truth revealed",
	17: "Hope, inspiration, guidance, healing, renewal, spiritual connection",
	18: "Illusion, fear, anxiety, subconscious, intuition, hidden truths, dreams",
	19: "Joy, success, vitality, clarity, optimism, achievement, enlightenment",
	20: "Awakening, rebirth, calling, purpose, forgiveness, new phase",
	21: "Completion, integration, accomplishment, fulfillment, wholeness, success",
}

var minorKeywords = map[card.Suit]map[card.Rank]string{
	card.Wands: {
		1:  "Fire energy, new beginnings, creative spark, inspiration, passion, initiative, opportunity",
		2:  "Fire energy, planning, future vision, making decisions, progress, forward movement",
		3:  "Fire energy, expansion, growth, celebration, communication, leadership, future planning",
		4:  "Fire energy, stability, foundation, security, celebration, harmony, homecoming",
		5:  "Fire energy, competition, conflict, inner strength, challenge, sportsmanship",
		6:  "Fire energy, victory, recognition, public success, achievement, acclaim",
		7:  "Fire energy, defense, courage, conviction, standing ground, moral position",
		8:  "Fire energy, rapid movement, messages, communication, quick action, haste",
		9:  "Fire energy, strength, resilience, protection, readiness, defense",
		10: "Fire energy, completion, fulfillment, responsibility, burden, success",
		11: "Fire energy, creative spark, new passion, youthful enthusiasm, opportunity",
		12: "Fire energy, action, movement, swift change, enthusiasm, adventure",
		13: "Fire energy, mature creativity, leadership, confidence, passion, inspiration",
		14: "Fire energy, mastery, creative leadership, vision, inspiration, authority",
	},
	card.Cups: {
		1:  "Water energy, emotional new beginnings, love, intuition, new relationships, creative flow",
		2:  "Water energy, partnership, harmony, union, emotional connection, balance",
		3:  "Water energy, celebration, community, friendship, emotional abundance, joy",
		4:  "Water energy, emotional security, stability, foundations, home, relationships",
		5:  "Water energy, loss, disappointment, emotional transition, letting go, change",
		6:  "Water energy, emotional support, generosity, sharing, giving, nostalgia",
		7:  "Water energy, choices, reflection, inner wisdom, emotional decision, retreat",
		8:  "Water energy, moving on from emotional past, new opportunities, change, transition",
		9:  "Water energy, emotional satisfaction, dreams fulfilled, wishes come true, contentment",
		10: "Water energy, emotional completion, family harmony, emotional abundance, fulfillment",
		11: "Water energy, emotional curiosity, creative intuition, new emotional opportunities",
		12: "Water energy, emotional action, romance, communication, messages, movement",
		13: "Water energy, emotional mastery, compassion, nurturing, mature feelings, wisdom",
		14: "Water energy, emotional control, stability, mature emotions, relationship mastery",
	},
	card.Swords: {
		1:  "Air energy, mental clarity, new ideas, breakthrough, intellectual power, truth",
		2:  "Air energy, indecision, stalemate, choices, mental conflict, blocked thinking",
		3:  "Air energy, heartbreak, sorrow, painful truth, mental separation, grief",
		4:  "Air energy, rest, meditation, recovery, mental pause, truce",
		5:  "Air energy, victory through cunning, strategy, escape, Pyrrhic victory",
		6:  "Air energy, mental recovery, new paths, moving on, intellectual transition",
		7:  "Air energy, deception, strategy, withdrawal, cunning, intellect, escape",
		8:  "Air energy, mental restriction, feeling trapped, isolation, powerlessness",
		9:  "Air energy, mental anguish, worry, anxiety, sleepless nights, mental burden",
		10: "Air energy, mental ruin, complete breakdown, disaster, bottom, rock bottom",
		11: "Air energy, mental curiosity, new ideas, intellectual opportunity, learning",
		12: "Air energy, intellectual action, communication, messages, change, movement",
		13: "Air energy, intellectual mastery, wisdom, emotional clarity, mature thinking",
		14: "Air energy, mental power, authority, intellectual control, truth, command",
	},
	card.Pentacles: {
		1:  "Earth energy, material new beginnings, prosperity, opportunity, manifestation",
		2:  "Earth energy, financial balance, juggling resources, flexibility, adaptation",
		3:  "Earth energy, skilled work, craftsmanship, collaboration, team effort, mastery",
		4:  "Earth energy, material security, stability, foundations, conservation, protection",
		5:  "Earth energy, material hardship, poverty, isolation, spiritual seeking",
		6:  "Earth energy, material generosity, giving, sharing, wealth distribution, charity",
		7:  "Earth energy, material patience, waiting, investment, long-term planning, harvest",
		8:  "Earth energy, skill mastery, apprenticeship, detailed work, craftsmanship",
		9:  "Earth energy, material abundance, luxury, success, financial security, comfort",
		10: "Earth energy, material completion, family wealth, inheritance, legacy, fulfillment",
		11: "Earth energy, material opportunity, learning, study, practical skills, manifestation",
		12: "Earth energy, material action, steady progress, reliable work, methodical approach",
		13: "Earth energy, material nurturing, practical wisdom, abundance, prosperity management",
		14: "Earth energy, material mastery, worldly success, enterprise, stability, wealth",
	},
}

// Standard returns the built-in 78-card Rider-Waite deck: the 22 major
// arcana followed by the four minor suits, ace through king.
func Standard() *Deck {
	cards := make([]card.Card, 0, 78)

	for i := 0; i <= 21; i++ {
		cards = append(cards, card.Card{
			Suit:    card.MajorArcana,
			Rank:    card.Rank(i),
			Name:    majorNames[i],
			Upright: majorKeywords[i],
		})
	}

	for _, suit := range []card.Suit{card.Wands, card.Cups, card.Swords, card.Pentacles} {
		for r := card.Ace; r <= card.King; r++ {
			cards = append(cards, card.Card{
				Suit:    suit,
				Rank:    r,
				Name:    defaultName(suit, r),
				Upright: minorKeywords[suit][r],
			})
		}
	}

	// The standard deck is duplicate-free by construction.
	d, _ := New("Rider-Waite", "", "1.0", cards)
	return d
}
