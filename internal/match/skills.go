package match

import (
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jobsieve/jobsieve/internal/util"
)

// Skill expressions are infix boolean formulas over double-quoted skill
// literals, e.g. `"Python" AND ("Java" OR "Go")`. Operators are the
// case-insensitive keywords and/or/not; anything outside quotes, parentheses,
// and keywords is ignored by the tokenizer.

var skillTokenPattern = regexp.MustCompile(`"[^"]+"|\(|\)|(?i)\b(?:and|or|not)\b`)

var skillPrecedence = map[string]int{"not": 3, "and": 2, "or": 1}

var (
	errMismatchedParens     = errors.New("mismatched parentheses")
	errInsufficientOperands = errors.New("operator with insufficient operands")
	errEmptyExpression      = errors.New("expression reduces to no tokens")
)

// EvaluateSkills evaluates the boolean skill expression against the
// candidate's skill set and computes the containment-ratio score: the share
// of all quoted literals present in the skill set, as a percentage.
//
// Any expression error (mismatched parentheses, an operator left without
// operands, an empty token stream) fails closed: the result is (false, 0),
// never a crash.
func (e *Engine) EvaluateSkills(expression string, skills []string) (bool, float64) {
	skillSet := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		if c := strings.ToLower(strings.TrimSpace(s)); c != "" {
			skillSet[c] = struct{}{}
		}
	}

	tokens := tokenizeSkillExpression(expression)

	result, err := evaluateSkillTokens(tokens, skillSet)
	if err != nil {
		e.logger.Debug("skill expression failed to evaluate, failing closed",
			zap.String("expression", util.TruncateForLog(expression, maxLoggedExpression)),
			zap.Error(err),
		)
		return false, 0
	}

	required := requiredLiterals(tokens)
	if len(required) == 0 {
		return result, 0
	}

	matched := 0
	for literal := range required {
		if _, ok := skillSet[literal]; ok {
			matched++
		}
	}

	return result, round2(float64(matched) / float64(len(required)) * 100)
}

// RequiredSkills lists the distinct quoted literals of the expression in
// their order of first appearance.
func RequiredSkills(expression string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range tokenizeSkillExpression(expression) {
		if !tok.literal || tok.value == "" {
			continue
		}
		if _, ok := seen[tok.value]; ok {
			continue
		}
		seen[tok.value] = struct{}{}
		out = append(out, tok.value)
	}
	return out
}

type skillToken struct {
	value   string
	literal bool
}

func tokenizeSkillExpression(expression string) []skillToken {
	raw := skillTokenPattern.FindAllString(expression, -1)
	tokens := make([]skillToken, 0, len(raw))
	for _, tok := range raw {
		if strings.HasPrefix(tok, `"`) {
			// A literal of pure whitespace trims to "" and can never match,
			// but it still occupies an operand slot.
			value := strings.ToLower(strings.TrimSpace(strings.Trim(tok, `"`)))
			tokens = append(tokens, skillToken{value: value, literal: true})
			continue
		}
		tokens = append(tokens, skillToken{value: strings.ToLower(tok)})
	}
	return tokens
}

func requiredLiterals(tokens []skillToken) map[string]struct{} {
	required := make(map[string]struct{})
	for _, tok := range tokens {
		if tok.literal && tok.value != "" {
			required[tok.value] = struct{}{}
		}
	}
	return required
}

// evaluateSkillTokens runs a two-stack shunting-yard evaluation with
// precedence not > and > or, applying operators left to right.
func evaluateSkillTokens(tokens []skillToken, skillSet map[string]struct{}) (bool, error) {
	if len(tokens) == 0 {
		return false, errEmptyExpression
	}

	var operands []bool
	var operators []string

	apply := func(op string) error {
		if op == "not" {
			if len(operands) < 1 {
				return errInsufficientOperands
			}
			operands[len(operands)-1] = !operands[len(operands)-1]
			return nil
		}

		if len(operands) < 2 {
			return errInsufficientOperands
		}
		right := operands[len(operands)-1]
		left := operands[len(operands)-2]
		operands = operands[:len(operands)-2]

		switch op {
		case "and":
			operands = append(operands, left && right)
		case "or":
			operands = append(operands, left || right)
		}
		return nil
	}

	for _, tok := range tokens {
		switch {
		case tok.literal:
			_, present := skillSet[tok.value]
			operands = append(operands, present)
		case tok.value == "(":
			operators = append(operators, tok.value)
		case tok.value == ")":
			for len(operators) > 0 && operators[len(operators)-1] != "(" {
				op := operators[len(operators)-1]
				operators = operators[:len(operators)-1]
				if err := apply(op); err != nil {
					return false, err
				}
			}
			if len(operators) == 0 {
				return false, errMismatchedParens
			}
			operators = operators[:len(operators)-1]
		default: // and/or/not
			for len(operators) > 0 && operators[len(operators)-1] != "(" &&
				skillPrecedence[operators[len(operators)-1]] >= skillPrecedence[tok.value] {
				op := operators[len(operators)-1]
				operators = operators[:len(operators)-1]
				if err := apply(op); err != nil {
					return false, err
				}
			}
			operators = append(operators, tok.value)
		}
	}

	for len(operators) > 0 {
		op := operators[len(operators)-1]
		if op == "(" {
			return false, errMismatchedParens
		}
		operators = operators[:len(operators)-1]
		if err := apply(op); err != nil {
			return false, err
		}
	}

	if len(operands) == 0 {
		return false, errEmptyExpression
	}
	return operands[len(operands)-1], nil
}
