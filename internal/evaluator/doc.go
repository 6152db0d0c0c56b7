// Package evaluator scores follow-the-queen hands.
//
// High hands are scored over five cards with every wild card free to become
// any rank. Low hands are ace-low with no qualifier. A player's best high and
// best low are each chosen from every three-private plus two-community
// combination, independently of one another.
package evaluator
