package server

import (
	"strings"

	"cardtable/internal/apperrors"

	"cardtable/internal/game/card"
	"cardtable/internal/game/doudizhu"
	"cardtable/internal/game/wushik"
	"cardtable/internal/protocol"
	"cardtable/internal/protocol/codec"
	"cardtable/internal/room"
)

type handlerFunc func(*Client, *protocol.Message)

func (s *Server) initHandlers() {
	s.handlers = map[protocol.MessageType]handlerFunc{
		protocol.MsgJoin:      s.handleJoin,
		protocol.MsgStartGame: s.handleStartGame,
		protocol.MsgAddBot:    s.handleAddBot,
		protocol.MsgReset:     s.handleReset,
		protocol.MsgBid:       s.handleBid,
		protocol.MsgPass:      s.handlePass,
		protocol.MsgSetTrump:  s.handleSetTrump,
		protocol.MsgPlay:      s.handlePlay,
	}
}

// dispatch 按消息类型分发到对应处理器
func (s *Server) dispatch(c *Client, msg *protocol.Message) {
	handler, ok := s.handlers[msg.Type]
	if !ok {
		c.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}
	handler(c, msg)
}

func (s *Server) handleJoin(c *Client, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.JoinPayload](msg)
	if err != nil || strings.TrimSpace(payload.Name) == "" {
		c.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	c.room.Mutate(c, func(e room.Engine) error {
		return e.Join(c.ID, strings.TrimSpace(payload.Name))
	})
}

func (s *Server) handleStartGame(c *Client, _ *protocol.Message) {
	c.room.Mutate(c, func(e room.Engine) error {
		return e.Start()
	})
}

func (s *Server) handleAddBot(c *Client, _ *protocol.Message) {
	c.room.Mutate(c, func(e room.Engine) error {
		return e.AddBot()
	})
}

func (s *Server) handleReset(c *Client, _ *protocol.Message) {
	c.room.Mutate(c, func(e room.Engine) error {
		e.Reset()
		return nil
	})
}

// handleBid 叫分，仅斗地主房间
func (s *Server) handleBid(c *Client, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.BidPayload](msg)
	if err != nil {
		c.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	c.room.Mutate(c, func(e room.Engine) error {
		g, ok := e.(*doudizhu.Game)
		if !ok {
			return apperrors.ErrInvalidMsg
		}
		return g.Bid(c.ID, payload.Value)
	})
}

// handlePass 过牌，仅斗地主房间
func (s *Server) handlePass(c *Client, _ *protocol.Message) {
	c.room.Mutate(c, func(e room.Engine) error {
		g, ok := e.(*doudizhu.Game)
		if !ok {
			return apperrors.ErrInvalidMsg
		}
		return g.Pass(c.ID)
	})
}

// handleSetTrump 定主花色，仅五十K房间
func (s *Server) handleSetTrump(c *Client, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.SetTrumpPayload](msg)
	if err != nil {
		c.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	suit, ok := card.SuitFromName(payload.Suit)
	if !ok {
		c.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidSuit))
		return
	}

	c.room.Mutate(c, func(e room.Engine) error {
		g, ok := e.(*wushik.Game)
		if !ok {
			return apperrors.ErrInvalidMsg
		}
		return g.SetTrump(c.ID, suit)
	})
}

// handlePlay 出牌：两种玩法载荷不同，按房间玩法解析
func (s *Server) handlePlay(c *Client, msg *protocol.Message) {
	switch c.room.Game {
	case protocol.GameDoudizhu:
		payload, err := codec.ParsePayload[protocol.PlayCardsPayload](msg)
		if err != nil {
			c.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			return
		}
		c.room.Mutate(c, func(e room.Engine) error {
			g, ok := e.(*doudizhu.Game)
			if !ok {
				return apperrors.ErrInvalidMsg
			}
			return g.Play(c.ID, payload.CardIDs)
		})
	case protocol.GameWushik:
		payload, err := codec.ParsePayload[protocol.PlayCardPayload](msg)
		if err != nil {
			c.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			return
		}
		c.room.Mutate(c, func(e room.Engine) error {
			g, ok := e.(*wushik.Game)
			if !ok {
				return apperrors.ErrInvalidMsg
			}
			return g.Play(c.ID, payload.CardIndex)
		})
	default:
		c.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
	}
}
