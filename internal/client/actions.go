package client

import (
	"cardtable/internal/protocol"
	"cardtable/internal/protocol/codec"
)

// --- 便捷方法 ---

// Join 入座
func (c *Client) Join(name string) error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgJoin, protocol.JoinPayload{
		Name: name,
	}))
}

// StartGame 开始游戏
func (c *Client) StartGame() error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgStartGame, nil))
}

// AddBot 添加机器人
func (c *Client) AddBot() error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgAddBot, nil))
}

// Reset 重开一局
func (c *Client) Reset() error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgReset, nil))
}

// Bid 叫分（斗地主）
func (c *Client) Bid(value int) error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgBid, protocol.BidPayload{
		Value: value,
	}))
}

// PlayCards 出牌（斗地主，参数为手牌下标）
func (c *Client) PlayCards(cardIDs []int) error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgPlay, protocol.PlayCardsPayload{
		CardIDs: cardIDs,
	}))
}

// Pass 不出（斗地主）
func (c *Client) Pass() error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgPass, nil))
}

// SetTrump 定主花色（五十K）
func (c *Client) SetTrump(suit string) error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgSetTrump, protocol.SetTrumpPayload{
		Suit: suit,
	}))
}

// PlayCard 出一张牌（五十K，参数为手牌下标）
func (c *Client) PlayCard(index int) error {
	return c.SendMessage(codec.MustNewMessage(protocol.MsgPlay, protocol.PlayCardPayload{
		CardIndex: index,
	}))
}
