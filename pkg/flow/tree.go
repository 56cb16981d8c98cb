package flow

import "fmt"

// NodeID identifies one question in the guided flow.
type NodeID string

const (
	NodePrimaryIntent       NodeID = "q1_primary_intent"
	NodeUnsureSymptoms      NodeID = "q2_unsure_symptoms"
	NodeMedicalConditions   NodeID = "q2_medical_conditions"
	NodeMedicalEffects      NodeID = "q3_medical_effects"
	NodeMedicalFormat       NodeID = "q4_medical_format"
	NodeMedicalCBD          NodeID = "q5_medical_cbd"
	NodeRecreationalEffects NodeID = "q2_recreational_effects"
	NodeRecreationalMood    NodeID = "q3_recreational_mood"
	NodeRecreationalTime    NodeID = "q4_recreational_time"
	NodeRecreationalFormat  NodeID = "q5_recreational_format"
	NodeRecreationalPotency NodeID = "q6_recreational_potency"

	// NodeTerminal is the sentinel a transition returns when the flow is done.
	// It is not a real node and never appears as a map key.
	NodeTerminal NodeID = "results"
)

// RootNode is where every new session starts.
const RootNode = NodePrimaryIntent

// Category is the top-level catalog a finished flow redirects to.
type Category string

const (
	CategoryMedical      Category = "medical"
	CategoryRecreational Category = "recreational"
)

// AnswerAny is the "no preference" option value. Dimensions answered with
// it are omitted from the projected filters entirely.
const AnswerAny = "any"

// Mode distinguishes single- from multi-choice questions.
type Mode string

const (
	ModeSingle Mode = "single-choice"
	ModeMulti  Mode = "multi-choice"
)

type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Node is one question: prompt, options, selection mode and the transition
// rule deciding what comes next. Next receives the committed answer (one
// value for single-choice, the full set for multi-choice) and returns the
// next node's ID or NodeTerminal.
type Node struct {
	ID            NodeID
	Text          string
	Subtitle      string
	Mode          Mode
	MaxSelections int // only meaningful for ModeMulti; 0 means unlimited
	Options       []Option
	Next          func(answer []string) NodeID
}

// Tree is the fixed question graph, keyed by node ID.
type Tree map[NodeID]*Node

// Validate checks the graph for referential completeness: every node must
// have options and a transition, and every transition target reachable
// through any single option value must be an existing node or the terminal
// sentinel. A failure here is a configuration error and should stop boot.
func (t Tree) Validate() error {
	if _, ok := t[RootNode]; !ok {
		return fmt.Errorf("flow tree: root node %q missing", RootNode)
	}
	for id, node := range t {
		if node.ID != id {
			return fmt.Errorf("flow tree: node keyed %q declares id %q", id, node.ID)
		}
		if len(node.Options) == 0 {
			return fmt.Errorf("flow tree: node %q has no options", id)
		}
		if node.Next == nil {
			return fmt.Errorf("flow tree: node %q has no transition", id)
		}
		if node.Mode != ModeSingle && node.Mode != ModeMulti {
			return fmt.Errorf("flow tree: node %q has unknown mode %q", id, node.Mode)
		}
		seen := make(map[string]bool, len(node.Options))
		for _, opt := range node.Options {
			if seen[opt.Value] {
				return fmt.Errorf("flow tree: node %q has duplicate option %q", id, opt.Value)
			}
			seen[opt.Value] = true

			// The transitions in this tree branch on single values only, so
			// probing each option in isolation covers every reachable target.
			target := node.Next([]string{opt.Value})
			if target == NodeTerminal {
				continue
			}
			if _, ok := t[target]; !ok {
				return fmt.Errorf("flow tree: node %q transitions to unknown node %q for answer %q", id, target, opt.Value)
			}
		}
	}
	return nil
}

// DefaultTree returns the production question graph. The node set, prompts
// and option values drive both the UI and the filter projection, so they
// must stay in sync with the catalog's tag vocabulary.
func DefaultTree() Tree {
	return Tree{
		NodePrimaryIntent: {
			ID:   NodePrimaryIntent,
			Text: "What do you need?",
			Mode: ModeSingle,
			Options: []Option{
				{Value: "medical", Label: "Medical", Description: "CBD-focused products for therapeutic use"},
				{Value: "recreational", Label: "Recreational", Description: "THC products for personal enjoyment"},
				{Value: "unsure", Label: "I'm not sure yet", Description: "Help me figure it out"},
			},
			Next: func(answer []string) NodeID {
				switch first(answer) {
				case "medical":
					return NodeMedicalConditions
				case "recreational":
					return NodeRecreationalEffects
				default:
					return NodeUnsureSymptoms
				}
			},
		},

		NodeUnsureSymptoms: {
			ID:   NodeUnsureSymptoms,
			Text: "Are you looking to address specific symptoms or medical conditions?",
			Mode: ModeSingle,
			Options: []Option{
				{Value: "yes", Label: "Yes, I have specific symptoms", Description: "Pain, anxiety, inflammation, etc."},
				{Value: "no", Label: "No, I want recreational effects", Description: "Relaxation, energy, creativity, etc."},
			},
			Next: func(answer []string) NodeID {
				if first(answer) == "yes" {
					return NodeMedicalConditions
				}
				return NodeRecreationalEffects
			},
		},

		NodeMedicalConditions: {
			ID:       NodeMedicalConditions,
			Text:     "Which conditions are you looking to address?",
			Subtitle: "Select all that apply",
			Mode:     ModeMulti,
			Options: []Option{
				{Value: "chronic pain", Label: "Chronic Pain"},
				{Value: "anxiety", Label: "Anxiety"},
				{Value: "inflammation", Label: "Inflammation"},
				{Value: "epilepsy", Label: "Epilepsy"},
				{Value: "insomnia", Label: "Insomnia"},
				{Value: "depression", Label: "Depression"},
				{Value: "migraines", Label: "Migraines"},
				{Value: "muscle spasms", Label: "Muscle Spasms"},
			},
			Next: func([]string) NodeID { return NodeMedicalEffects },
		},

		NodeMedicalEffects: {
			ID:            NodeMedicalEffects,
			Text:          "What effects are most important to you?",
			Subtitle:      "Select up to 3",
			Mode:          ModeMulti,
			MaxSelections: 3,
			Options: []Option{
				{Value: "pain relief", Label: "Pain Relief"},
				{Value: "anti-inflammatory", Label: "Anti-Inflammatory"},
				{Value: "relaxation", Label: "Relaxation"},
				{Value: "focus", Label: "Focus"},
				{Value: "anti-anxiety", Label: "Anti-Anxiety"},
				{Value: "sedation", Label: "Sleep/Sedation"},
			},
			Next: func([]string) NodeID { return NodeMedicalFormat },
		},

		NodeMedicalFormat: {
			ID:   NodeMedicalFormat,
			Text: "How would you prefer to consume it?",
			Mode: ModeSingle,
			Options: []Option{
				{Value: "Tincture", Label: "Tincture/Oil", Description: "Under the tongue, precise dosing"},
				{Value: "Capsules", Label: "Capsules", Description: "Easy to take, discreet"},
				{Value: "Flower", Label: "Flower", Description: "Smoke or vaporize"},
				{Value: "Vape Cartridge", Label: "Vape", Description: "Quick onset, portable"},
				{Value: AnswerAny, Label: "No preference", Description: "Show me all options"},
			},
			Next: func([]string) NodeID { return NodeMedicalCBD },
		},

		NodeMedicalCBD: {
			ID:   NodeMedicalCBD,
			Text: "What CBD content level do you prefer?",
			Mode: ModeSingle,
			Options: []Option{
				{Value: "high", Label: "High CBD (15%+)", Description: "Maximum therapeutic benefits"},
				{Value: "medium", Label: "Medium CBD (5-15%)", Description: "Balanced approach"},
				{Value: "low", Label: "Low CBD (0-5%)", Description: "Minimal CBD content"},
				{Value: AnswerAny, Label: "No preference", Description: "Any CBD level"},
			},
			Next: func([]string) NodeID { return NodeTerminal },
		},

		NodeRecreationalEffects: {
			ID:       NodeRecreationalEffects,
			Text:     "What effects are you looking for?",
			Subtitle: "Select all that apply",
			Mode:     ModeMulti,
			Options: []Option{
				{Value: "euphoria", Label: "Euphoria"},
				{Value: "relaxation", Label: "Relaxation"},
				{Value: "energy", Label: "Energy"},
				{Value: "creativity", Label: "Creativity"},
				{Value: "focus", Label: "Focus"},
				{Value: "sedation", Label: "Sedation/Sleep"},
			},
			Next: func([]string) NodeID { return NodeRecreationalMood },
		},

		NodeRecreationalMood: {
			ID:            NodeRecreationalMood,
			Text:          "What mood are you aiming for?",
			Subtitle:      "Select up to 3",
			Mode:          ModeMulti,
			MaxSelections: 3,
			Options: []Option{
				{Value: "happy", Label: "Happy"},
				{Value: "relaxed", Label: "Relaxed"},
				{Value: "uplifted", Label: "Uplifted"},
				{Value: "energized", Label: "Energized"},
				{Value: "creative", Label: "Creative"},
				{Value: "sleepy", Label: "Sleepy"},
				{Value: "giggly", Label: "Giggly"},
			},
			Next: func([]string) NodeID { return NodeRecreationalTime },
		},

		NodeRecreationalTime: {
			ID:   NodeRecreationalTime,
			Text: "When do you plan to use it?",
			Mode: ModeSingle,
			Options: []Option{
				{Value: "daytime", Label: "Daytime", Description: "Active, social, productive"},
				{Value: "evening", Label: "Evening", Description: "Wind down, relax, sleep"},
				{Value: "anytime", Label: "Anytime", Description: "Flexible use"},
			},
			Next: func([]string) NodeID { return NodeRecreationalFormat },
		},

		NodeRecreationalFormat: {
			ID:   NodeRecreationalFormat,
			Text: "How would you prefer to consume it?",
			Mode: ModeSingle,
			Options: []Option{
				{Value: "Flower", Label: "Flower", Description: "Classic experience"},
				{Value: "Vape", Label: "Vape", Description: "Discreet and portable"},
				{Value: "Edible", Label: "Edible", Description: "Long-lasting effects"},
				{Value: "Concentrate", Label: "Concentrate", Description: "High potency"},
				{Value: AnswerAny, Label: "No preference", Description: "Show me all options"},
			},
			Next: func([]string) NodeID { return NodeRecreationalPotency },
		},

		NodeRecreationalPotency: {
			ID:   NodeRecreationalPotency,
			Text: "What THC potency level?",
			Mode: ModeSingle,
			Options: []Option{
				{Value: "low", Label: "Low THC (0-15%)", Description: "Gentle, controlled experience"},
				{Value: "medium", Label: "Medium THC (15-23%)", Description: "Balanced potency"},
				{Value: "high", Label: "High THC (23%+)", Description: "Strong effects"},
				{Value: AnswerAny, Label: "No preference", Description: "Any potency level"},
			},
			Next: func([]string) NodeID { return NodeTerminal },
		},
	}
}

func first(answer []string) string {
	if len(answer) == 0 {
		return ""
	}
	return answer[0]
}
