package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPopTopOrder(t *testing.T) {
	t.Run("lowest priority first and insertion order among equals", func(t *testing.T) {
		l := NewOrdersList()
		advance := NewAdvance(3, 0, 1)
		bomb := NewBomb(4)
		deploy := NewDeploy(2, 0)
		blockade := NewBlockade(1)
		airlift := NewAirlift(1, 0, 2)
		negotiate := NewNegotiate(1, 2)
		for _, o := range []Order{advance, bomb, deploy, blockade, airlift, negotiate} {
			l.Add(o)
		}

		var got []Order
		for l.Len() > 0 {
			size := l.Len()
			o, ok := l.PopTopOrder()
			require.True(t, ok)
			require.Equal(t, size-1, l.Len())
			got = append(got, o)
		}

		require.Equal(t, []Order{deploy, airlift, blockade, advance, bomb, negotiate}, got)
	})

	t.Run("equal priorities come back in insertion order", func(t *testing.T) {
		l := NewOrdersList()
		for target := 0; target < 4; target++ {
			l.Add(NewDeploy(1, target))
		}

		for target := 0; target < 4; target++ {
			o, ok := l.PopTopOrder()
			require.True(t, ok)
			require.Equal(t, target, o.Target)
		}
	})

	t.Run("empty list", func(t *testing.T) {
		l := NewOrdersList()

		_, ok := l.PopTopOrder()

		require.False(t, ok)
		require.Zero(t, l.Len())
	})
}

func TestOrdersListEditing(t *testing.T) {
	newList := func() *OrdersList {
		l := NewOrdersList()
		l.Add(NewDeploy(1, 0))
		l.Add(NewDeploy(2, 0))
		l.Add(NewDeploy(3, 0))
		return l
	}
	armies := func(l *OrdersList) []int {
		var out []int
		for _, o := range l.Orders() {
			out = append(out, o.Armies)
		}
		return out
	}

	t.Run("remove", func(t *testing.T) {
		l := newList()

		require.NoError(t, l.Remove(1))
		require.Equal(t, []int{1, 3}, armies(l))
	})

	t.Run("remove out of range", func(t *testing.T) {
		l := newList()

		require.ErrorIs(t, l.Remove(3), ErrIndexOutOfRange)
		require.ErrorIs(t, l.Remove(-1), ErrIndexOutOfRange)
		require.Equal(t, 3, l.Len())
	})

	t.Run("move forward and back", func(t *testing.T) {
		l := newList()

		require.NoError(t, l.Move(0, 2))
		require.Equal(t, []int{2, 3, 1}, armies(l))
		require.NoError(t, l.Move(2, 0))
		require.Equal(t, []int{1, 2, 3}, armies(l))
	})

	t.Run("move out of range", func(t *testing.T) {
		l := newList()

		require.ErrorIs(t, l.Move(0, 3), ErrIndexOutOfRange)
		require.Equal(t, []int{1, 2, 3}, armies(l))
	})

	t.Run("orders returns a copy", func(t *testing.T) {
		l := newList()
		orders := l.Orders()
		orders[0].Armies = 99

		require.Equal(t, []int{1, 2, 3}, armies(l))
	})

	t.Run("contains and clear", func(t *testing.T) {
		l := newList()

		require.True(t, l.Contains(Deploy))
		require.False(t, l.Contains(Advance))
		l.Clear()
		require.Zero(t, l.Len())
	})
}
