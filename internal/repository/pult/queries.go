package pult

const trackPollsByRangeQuery = `
query GetTrackPollsByRange($fromDate: String!, $toDate: String!) {
  trackPollsRange(fromDate: $fromDate, toDate: $toDate) {
    id
    organizationId
    hris_time_off_id
    result
    resultOfficeId
    resultOfficeDeskId
    pollDate
    time_start
    time_end
    timestampCreated
    timestampUpdated
    user {
      id
      uuid
      avatar
      email
      firstName
      lastName
    }
    userId
    resultOffice {
      id
      name
      label
      emoji
    }
    resultOfficeDesk {
      timestampDeleted
    }
  }
}
`

const trackOfficesQuery = `
query GetTrackOffices {
  track_office(where: {timestamp_archived: {_is_null: true}}) {
    capacity
    emoji
    id
    label
    mode
    mode_hybrid_padding
    name
    organizationId
    prioritySeats
    priorityUntil
    serializedAreaLabels
    serializedAreas
    serializedWalls
    desks: track_office_desks(where: {timestampDeleted: {_is_null: true}}) {
      disabled
      id
      name
      officeId
      reservedByUserId
      timestampCreated
      timestampDeleted
      x
      y
      tags: track_office_desks_tags {
        tag: track_office_desk_tag {
          id
          color
          name
          timestampCreated
        }
      }
      reservedByUser: user {
        id
        uuid
        firstName
        lastName
        avatar
      }
      deskGroupWhitelistId
      connect_desks {
        connect {
          destination_id
          source_id
        }
      }
    }
  }
}
`
