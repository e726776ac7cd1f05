package models

import (
	"encoding/xml"
	"strings"
)

// ParsedResponse is the parsed form of a gateway response payload. The two
// integration modes return differently shaped documents for the same logical
// fields: the server-to-server mode nests them under a Transaction element,
// the hosted mode puts them at the top level. Accessors handle both shapes
// and degrade to ("", false) rather than erroring when the payload is
// missing, malformed, or lacks the field.
type ParsedResponse struct {
	root *responseNode
}

type responseNode struct {
	XMLName  xml.Name
	Text     string         `xml:",chardata"`
	Children []responseNode `xml:",any"`
}

// ParseResponse parses a raw response payload. It never fails: an empty or
// malformed payload produces a ParsedResponse whose accessors all report
// not-available.
func ParseResponse(raw string) *ParsedResponse {
	if strings.TrimSpace(raw) == "" {
		return &ParsedResponse{}
	}

	var root responseNode
	if err := xml.Unmarshal([]byte(raw), &root); err != nil {
		return &ParsedResponse{}
	}
	return &ParsedResponse{root: &root}
}

// Valid reports whether the payload parsed at all.
func (p *ParsedResponse) Valid() bool {
	return p.root != nil
}

// AmountSettlement returns the settled amount. The gateway only includes it
// for hosted-flow transactions, so it is always a top-level field.
func (p *ParsedResponse) AmountSettlement() (string, bool) {
	if p.root == nil {
		return "", false
	}
	return p.root.field("AmountSettlement")
}

// CardName returns the card scheme name (e.g. "Visa").
func (p *ParsedResponse) CardName() (string, bool) {
	return p.transactionField("CardName")
}

// CardHolderName returns the cardholder name as echoed by the gateway.
func (p *ParsedResponse) CardHolderName() (string, bool) {
	return p.transactionField("CardHolderName")
}

// DateExpiry returns the card expiry (mmyy).
func (p *ParsedResponse) DateExpiry() (string, bool) {
	return p.transactionField("DateExpiry")
}

// CardNumber returns the masked card number.
func (p *ParsedResponse) CardNumber() (string, bool) {
	return p.transactionField("CardNumber")
}

// transactionField looks the field up under a nested Transaction element
// first, falling back to the top level for hosted-shape payloads.
func (p *ParsedResponse) transactionField(name string) (string, bool) {
	if p.root == nil {
		return "", false
	}
	if txn := p.root.child("Transaction"); txn != nil {
		return txn.field(name)
	}
	return p.root.field(name)
}

func (n *responseNode) child(name string) *responseNode {
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			return &n.Children[i]
		}
	}
	return nil
}

func (n *responseNode) field(name string) (string, bool) {
	c := n.child(name)
	if c == nil {
		return "", false
	}
	return strings.TrimSpace(c.Text), true
}
