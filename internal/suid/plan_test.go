package suid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classmeta/internal/classmodel"
)

func ExamplePlan() {
	point := &classmodel.Snapshot{
		QualifiedName: "a/B",
		AccessFlags:   classmodel.AccPublic,
		FieldEntries:  []classmodel.Field{{Name: "f", Access: classmodel.AccPrivate, Descriptor: "I"}},
		MethodEntries: []classmodel.Method{{Name: "m", Access: classmodel.AccPublic, Descriptor: "()V"}},
	}

	plan, ok, err := Plan(point)
	if err != nil || !ok {
		panic(err)
	}

	fmt.Println(plan.Access, plan.Name, plan.Descriptor, plan.Value)
	// Output: static final serialVersionUID J -8014232842454258709
}

func TestPlan(t *testing.T) {
	t.Parallel()

	classes := loadClasses(t)

	t.Run("class", func(t *testing.T) {
		t.Parallel()

		plan, ok, err := Plan(classes["com/example/Point"])
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, FieldPlan{
			Name:       "serialVersionUID",
			Access:     classmodel.AccStatic | classmodel.AccFinal,
			Descriptor: "J",
			Value:      -4695716730294562542,
		}, plan)
		assert.Equal(t, classmodel.Field{
			Name:       "serialVersionUID",
			Access:     classmodel.AccStatic | classmodel.AccFinal,
			Descriptor: "J",
		}, plan.Field())
	})

	t.Run("interface is public", func(t *testing.T) {
		t.Parallel()

		plan, ok, err := Plan(classes["com.example.Shape"])
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, classmodel.AccPublic|classmodel.AccStatic|classmodel.AccFinal, plan.Access)
		assert.Equal(t, int64(-9155122766345970896), plan.Value)
	})

	t.Run("enum", func(t *testing.T) {
		t.Parallel()

		_, ok, err := Plan(classes["com/example/Color"])
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("already declared", func(t *testing.T) {
		t.Parallel()

		s := classmodel.SnapshotOf(classes["com/example/Point"])
		s.FieldEntries = append(s.FieldEntries, classmodel.Field{
			Name:       "serialVersionUID",
			Access:     classmodel.AccPrivate | classmodel.AccStatic | classmodel.AccFinal,
			Descriptor: "J",
		})

		_, ok, err := Plan(s)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalid model", func(t *testing.T) {
		t.Parallel()

		_, ok, err := Plan(&classmodel.Snapshot{})
		require.ErrorIs(t, err, ErrInvalidModel)
		assert.False(t, ok)
	})
}

func TestPlanIsIdempotent(t *testing.T) {
	t.Parallel()

	point := loadClasses(t)["com/example/Point"]

	plan, ok, err := Plan(point)
	require.NoError(t, err)
	require.True(t, ok)

	s := classmodel.SnapshotOf(point)
	s.FieldEntries = append(s.FieldEntries, plan.Field())

	_, again, err := Plan(s)
	require.NoError(t, err)
	assert.False(t, again)
}
