package engine

import (
	"fmt"

	"knockitoff/game"

	"github.com/rs/zerolog/log"
)

// PlacingHuman returns the human color whose pieces are being placed.
func (s *Session) PlacingHuman() (game.Color, bool) {
	setup := &s.State.Setup
	if s.State.Phase != game.SetupPhase || setup.HumanPlacementDone || setup.Index >= len(setup.HumanColors) {
		return 0, false
	}
	return setup.HumanColors[setup.Index], true
}

// PlaceHumanPiece drops one piece of kind from the placing human's rack on
// index. Once the rack is empty the next human takes over.
func (s *Session) PlaceHumanPiece(index int, kind game.Kind) error {
	color, ok := s.PlacingHuman()
	if !ok {
		return fmt.Errorf("no human is placing pieces")
	}
	if err := s.State.Place(index, color, kind); err != nil {
		return fmt.Errorf("failed to place %s for %s: %w", kind, s.State.DisplayName(color), err)
	}

	s.ui.PaintBoard(s.State.Board.Cells)
	s.ui.RenderRacks(s.State)
	if s.State.Setup.Racks[color].Size() == 0 {
		s.finishHumanPlacement(color)
	}
	return nil
}

// AutoPlaceHuman fills the placing human's home zone at random with the
// rest of their rack.
func (s *Session) AutoPlaceHuman() error {
	color, ok := s.PlacingHuman()
	if !ok {
		return fmt.Errorf("no human is placing pieces")
	}
	plan, err := s.plan(color)
	if err != nil {
		return err
	}
	for _, p := range plan {
		if err := s.PlaceHumanPiece(p.Index, p.Kind); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) finishHumanPlacement(color game.Color) {
	setup := &s.State.Setup
	setup.Index++
	log.Debug().Msgf("%s finished placing", s.State.DisplayName(color))
	if setup.Index >= len(setup.HumanColors) {
		setup.HumanPlacementDone = true
		log.Info().Msg("all humans finished placing")
		s.MaybeEnterPlayPhase()
	}
}

// PlanAIPlacements decides where every AI color's rack goes. Nothing is put
// on the board until RevealAIPlacements.
func (s *Session) PlanAIPlacements() {
	gs := s.State
	for _, color := range gs.AIColors() {
		if len(gs.Setup.Planned[color]) > 0 {
			continue
		}
		plan, err := s.plan(color)
		if err != nil {
			panic(err)
		}
		gs.Setup.Planned[color] = plan
		log.Debug().Msgf("planned %d placements for %s", len(plan), gs.DisplayName(color))
	}
}

// RevealAIPlacements puts every planned AI piece on the board, planning first
// if needed, and marks the AI reveal as done.
func (s *Session) RevealAIPlacements() {
	gs := s.State
	if gs.Setup.AIRevealDone {
		return
	}
	s.PlanAIPlacements()
	for _, color := range gs.AIColors() {
		for _, p := range gs.Setup.Planned[color] {
			if err := gs.Place(p.Index, color, p.Kind); err != nil {
				panic(fmt.Sprintf("planned placement no longer fits: %v", err))
			}
		}
		delete(gs.Setup.Planned, color)
	}
	gs.Setup.AIRevealDone = true
	log.Info().Msg("AI placements revealed")

	s.ui.PaintBoard(gs.Board.Cells)
	s.ui.RenderSideRacks(gs)
	s.MaybeEnterPlayPhase()
}

// plan scatters color's remaining rack over the free cells of its home zone.
func (s *Session) plan(color game.Color) ([]game.Placement, error) {
	gs := s.State
	var free []int
	for _, idx := range gs.Board.Layout.Zones[color] {
		if gs.Board.Cells[idx] == nil {
			free = append(free, idx)
		}
	}
	kinds := gs.Setup.Racks[color].Kinds()
	if len(free) < len(kinds) {
		return nil, fmt.Errorf("home zone of %s has %d free cells for %d pieces", color, len(free), len(kinds))
	}

	s.rng.Shuffle(len(free), func(i, j int) {
		free[i], free[j] = free[j], free[i]
	})
	plan := make([]game.Placement, len(kinds))
	for i, kind := range kinds {
		plan[i] = game.Placement{Index: free[i], Kind: kind}
	}
	return plan, nil
}

// MaybeEnterPlayPhase starts play once every human has placed, the AI
// placements are revealed and the board is ready. It is safe to call at any
// time; it reports whether this call started play.
func (s *Session) MaybeEnterPlayPhase() bool {
	gs := s.State
	if gs.Phase != game.SetupPhase {
		return false
	}
	humansDone := gs.Setup.HumanPlacementDone || gs.Setup.Index >= len(gs.Setup.HumanColors)
	if !humansDone || !gs.Setup.AIRevealDone || !s.boardReady(gs) {
		return false
	}

	gs.Phase = game.PlayPhase
	log.Info().Msgf("game %s starts, %s moves first", gs.ID, gs.CurrentPlayer().DisplayName())
	s.collector.Start(gs.Turn.Current())

	s.ui.PaintBoard(gs.Board.Cells)
	s.ui.RenderRacks(gs)
	s.ui.RenderSideRacks(gs)
	s.ui.RenderLog(gs)
	s.handOff()
	return true
}
