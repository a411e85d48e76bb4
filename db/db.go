package db

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/google/uuid"

	"github.com/jsphweid/eartrain/constants"
	"github.com/jsphweid/eartrain/score"
)

func newClient() *dynamodb.DynamoDB {
	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}
	return dynamodb.New(sess)
}

// PutScores archives finished sessions of a game. Unfinished sessions
// (missing either timestamp) are skipped.
func PutScores(game string, scores []*score.Score) int {
	client := newClient()
	var pushed int
	for _, sc := range scores {
		if sc.Start == nil || sc.End == nil {
			continue
		}
		payload, err := json.Marshal(sc)
		if err != nil {
			panic("Could not encode score because: " + err.Error())
		}
		correct, total := sc.Total()
		item := map[string]*dynamodb.AttributeValue{
			"PK":      {S: aws.String(game)},
			"SK":      {S: aws.String(sc.Start.Format(time.RFC3339) + "#" + uuid.New().String())},
			"Session": {S: aws.String(sc.Name)},
			"Correct": {N: aws.String(strconv.Itoa(correct))},
			"Total":   {N: aws.String(strconv.Itoa(total))},
			"Payload": {S: aws.String(string(payload))},
		}
		input := &dynamodb.PutItemInput{
			TableName: aws.String(constants.GetDynamoTable()),
			Item:      item,
		}
		if _, err := client.PutItem(input); err != nil {
			panic("Error from DynamoDB: " + err.Error())
		}
		pushed++
	}
	return pushed
}

// GetScores loads every archived session of a game, oldest first.
func GetScores(game string) []*score.Score {
	client := newClient()
	input := &dynamodb.QueryInput{
		TableName:              aws.String(constants.GetDynamoTable()),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":pk": {S: aws.String(game)},
		},
	}
	out, err := client.Query(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}
	var res []*score.Score
	for _, item := range out.Items {
		if item["Payload"] == nil || item["Payload"].S == nil {
			continue
		}
		var sc score.Score
		if err := json.Unmarshal([]byte(*item["Payload"].S), &sc); err != nil {
			continue
		}
		res = append(res, &sc)
	}
	return res
}
