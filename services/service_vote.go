package services

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ziffy_backend/dto"
	"ziffy_backend/internal/repository"
	"ziffy_backend/model"
)

const (
	VoteUp   = "up"
	VoteDown = "down"
)

type voteCase int

const (
	voteNew voteCase = iota
	voteSwitch
	voteRepeat
)

// ApplyVote runs the vote state machine for PATCH /vote/:id. The handler
// calls this one function and forwards the status and payload as-is.
//
// The write is a single conditional update: the filter restates the
// precondition the decision was made under, so two interleaved votes from
// the same voter cannot both apply. totalVote is then recomputed
// server-side as a separate write; the gap between the two writes is
// visible to concurrent readers and is accepted.
func ApplyVote(ctx context.Context, db *mongo.Database, postIDHex string, body dto.VoteRequestDTO) (int, any) {
	if body.Email == "" || body.Vote == "" {
		return fiber.StatusBadRequest, dto.ErrorResponse{Message: "Email and vote are required"}
	}
	if body.Vote != VoteUp && body.Vote != VoteDown {
		return fiber.StatusBadRequest, dto.ErrorResponse{Message: "vote must be 'up' or 'down'"}
	}

	if _, err := bson.ObjectIDFromHex(postIDHex); err != nil {
		return fiber.StatusNotFound, dto.ErrorResponse{Message: "Post not found"}
	}
	post, err := repository.FindPostByID(ctx, db, postIDHex)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return fiber.StatusNotFound, dto.ErrorResponse{Message: "Post not found"}
		}
		return fiber.StatusInternalServerError, dto.ErrorResponse{Message: "Internal Server Error"}
	}

	decision := decideVote(post.Voters, body.Email, body.Vote)
	if decision == voteRepeat {
		return fiber.StatusOK, dto.VoteResponse{Message: "Already voted", TotalVote: post.TotalVote}
	}

	matched, err := repository.ApplyVoteUpdate(
		ctx, db,
		voteFilter(post.ID, decision, body.Email, body.Vote),
		voteUpdate(decision, body.Email, body.Vote),
	)
	if err != nil {
		return fiber.StatusInternalServerError, dto.ErrorResponse{Message: "Internal Server Error"}
	}
	if matched == 0 {
		// lost a race with another vote from the same voter; the stored
		// state no longer satisfies the precondition, nothing was written
		return fiber.StatusOK, dto.VoteResponse{Message: "Already voted", TotalVote: post.TotalVote}
	}

	total, err := repository.RecomputeTotalVote(ctx, db, post.ID)
	if err != nil {
		// first write landed, second did not: totalVote is stale until an
		// operator reconciles it. Surfaced, never masked.
		return fiber.StatusInternalServerError, dto.ErrorResponse{Message: "Internal Server Error"}
	}

	return fiber.StatusOK, dto.VoteResponse{Message: "Vote updated successfully", TotalVote: total}
}

// decideVote classifies the vote against the post's current voter list:
// first vote, switch of direction, or repeat of the standing direction.
func decideVote(voters []model.Voter, email, direction string) voteCase {
	for _, v := range voters {
		if v.Email != email {
			continue
		}
		if v.Vote == direction {
			return voteRepeat
		}
		return voteSwitch
	}
	return voteNew
}

func counterField(direction string) string {
	if direction == VoteUp {
		return "upVote"
	}
	return "downVote"
}

func opposite(direction string) string {
	if direction == VoteUp {
		return VoteDown
	}
	return VoteUp
}

// voteFilter restates the decision's precondition so the update is a
// compare-and-swap: voteNew requires the voter to still be absent,
// voteSwitch requires the voter to still stand on the opposite direction.
func voteFilter(id bson.ObjectID, decision voteCase, email, direction string) bson.M {
	filter := bson.M{"_id": id}
	switch decision {
	case voteNew:
		filter["voters.email"] = bson.M{"$ne": email}
	case voteSwitch:
		filter["voters"] = bson.M{"$elemMatch": bson.M{
			"email": email,
			"vote":  opposite(direction),
		}}
	}
	return filter
}

// voteUpdate builds the single write for the decision: voteNew bumps one
// counter and appends the voter entry; voteSwitch moves one unit between
// the counters and overwrites the matched entry's direction via the
// positional operator.
func voteUpdate(decision voteCase, email, direction string) bson.M {
	switch decision {
	case voteNew:
		return bson.M{
			"$inc":  bson.M{counterField(direction): 1},
			"$push": bson.M{"voters": model.Voter{Email: email, Vote: direction}},
		}
	case voteSwitch:
		return bson.M{
			"$inc": bson.M{
				counterField(direction):           1,
				counterField(opposite(direction)): -1,
			},
			"$set": bson.M{"voters.$.vote": direction},
		}
	}
	return bson.M{}
}
