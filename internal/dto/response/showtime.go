package response

import (
	"cinebook/internal/data/entity"
)

type ShowTimeResponse struct {
	ID            string   `json:"id"`
	MovieID       string   `json:"movie_id"`
	MovieTitle    string   `json:"movie_title,omitempty"`
	TheaterID     string   `json:"theater_id"`
	TheaterName   string   `json:"theater_name,omitempty"`
	StartTime     string   `json:"start_time"`
	Price         int64    `json:"price"`
	OccupiedSeats []string `json:"occupied_seats"`
}

type SeatResponse struct {
	ID       string `json:"id"`
	Occupied bool   `json:"occupied"`
}

// ShowTimeDetailResponse carries the full seat map for the booking flow.
type ShowTimeDetailResponse struct {
	ShowTimeResponse
	SeatMap []SeatResponse `json:"seat_map"`
}

func ShowTimeToResponse(st *entity.ShowTime, movieTitle, theaterName string) ShowTimeResponse {
	occupied := st.OccupiedSeats
	if occupied == nil {
		occupied = []string{}
	}

	return ShowTimeResponse{
		ID:            st.ID,
		MovieID:       st.MovieID,
		MovieTitle:    movieTitle,
		TheaterID:     st.TheaterID,
		TheaterName:   theaterName,
		StartTime:     st.StartTime,
		Price:         st.Price,
		OccupiedSeats: occupied,
	}
}

func ShowTimeToDetailResponse(st *entity.ShowTime, movieTitle, theaterName string) ShowTimeDetailResponse {
	seatMap := make([]SeatResponse, 0, len(entity.SeatRows)*entity.SeatsPerRow)
	for _, seatID := range entity.SeatGrid() {
		seatMap = append(seatMap, SeatResponse{
			ID:       seatID,
			Occupied: st.IsOccupied(seatID),
		})
	}

	return ShowTimeDetailResponse{
		ShowTimeResponse: ShowTimeToResponse(st, movieTitle, theaterName),
		SeatMap:          seatMap,
	}
}
